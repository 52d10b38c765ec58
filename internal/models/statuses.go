package models

type ApplicationStatus string
type SchoolStatus string
type SchoolType string
type PartnerStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusApproved ApplicationStatus = "APPROVED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"

	SchoolStatusActive   SchoolStatus = "active"
	SchoolStatusDisabled SchoolStatus = "disabled"

	SchoolTypeJHS        SchoolType = "JHS"
	SchoolTypeSHS        SchoolType = "SHS"
	SchoolTypeNMTC       SchoolType = "NMTC"
	SchoolTypeUniversity SchoolType = "University"

	PartnerStatusActive   PartnerStatus = "active"
	PartnerStatusDisabled PartnerStatus = "disabled"
)

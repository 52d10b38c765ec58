package email

// Email represents an outgoing message.
type Email struct {
	From    string
	To      []string
	Subject string
	Body    string
	HTML    bool
}

// Config holds SMTP settings.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

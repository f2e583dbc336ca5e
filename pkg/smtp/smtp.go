package smtp

import (
	"fmt"
	smtpPkg "net/smtp"
	"os"
	"strings"
)

type ItfSmtp interface {
	SendOrderReceipt(userEmail string, orderID string, restaurantName string, lines []ReceiptLine, total string) error
}

type ReceiptLine struct {
	MenuName string
	Quantity int
	Subtotal string
}

type smtp struct {
	auth smtpPkg.Auth
	mail string
}

func New() ItfSmtp {
	mail := os.Getenv("SMTP_MAIL")
	password := os.Getenv("SMTP_PASSWORD")
	auth := smtpPkg.PlainAuth("", mail, password, "smtp.gmail.com")

	return &smtp{auth: auth, mail: mail}
}

func (s *smtp) SendOrderReceipt(userEmail string, orderID string, restaurantName string, lines []ReceiptLine, total string) error {
	to := []string{userEmail}

	var body strings.Builder
	body.WriteString(fmt.Sprintf("Thank you for your order at %s!\r\n\r\nOrder ID: %s\r\n\r\n", restaurantName, orderID))
	for _, line := range lines {
		body.WriteString(fmt.Sprintf("%dx %s - %s\r\n", line.Quantity, line.MenuName, line.Subtotal))
	}
	body.WriteString(fmt.Sprintf("\r\nTotal: %s\r\n", total))

	message := []byte(fmt.Sprintf("To: %s\r\nSubject: Your Savoro Order Receipt (%s)\r\n\r\n%s",
		userEmail, orderID, body.String()))

	err := smtpPkg.SendMail("smtp.gmail.com:587", s.auth, s.mail, to, message)
	if err != nil {
		return err
	}

	return nil
}

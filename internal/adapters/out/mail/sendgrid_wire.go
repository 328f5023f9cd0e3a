// internal/adapters/out/mail/sendgrid_wire.go
package mail

import "log"

const defaultShopBaseURL = "https://elanor.example.com"

// NewWelcomeMailerWithSendGrid は、SendGrid を使った WelcomeMailer を生成します。
//
// - apiKey      : SENDGRID_API_KEY
// - fromAddr    : SENDGRID_FROM（例: no-reply@elanor.example.com）
// - shopBaseURL : SHOP_BASE_URL
//
// apiKey が空の場合は nil を返し、ウェルカムメール送信は無効になります
// （購読そのものは通常どおり動作します）。
func NewWelcomeMailerWithSendGrid(apiKey, fromAddr, shopBaseURL string) *WelcomeMailer {
	if apiKey == "" {
		log.Printf("[mail] INFO: SENDGRID_API_KEY is empty. welcome mail disabled.")
		return nil
	}
	if fromAddr == "" {
		log.Printf("[mail] WARN: SENDGRID_FROM is empty. WelcomeMailer will fail to send mail.")
	}
	if shopBaseURL == "" {
		shopBaseURL = defaultShopBaseURL
		log.Printf("[mail] INFO: SHOP_BASE_URL is empty. default=%s", shopBaseURL)
	}

	client := NewSendGridClient(apiKey)
	mailer := NewWelcomeMailer(client, fromAddr, shopBaseURL)

	log.Printf("[mail] WelcomeMailerWithSendGrid initialized. from=%s baseURL=%s",
		fromAddr, shopBaseURL)

	return mailer
}

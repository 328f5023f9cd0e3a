// internal/adapters/out/mail/welcome_mailer.go
package mail

import (
	"context"
	"fmt"
	"strings"
)

// WelcomeMailerPort はアプリケーション層（usecase）が利用する
// 「購読ウェルカムメール送信用アウトバウンドポート」のインターフェースを表します。
//
//   - toEmail : 送信先メールアドレス（Subscriber.Email）
//   - name    : 購読者名（空文字可）
//
// 送信は best-effort: 失敗しても購読自体は成功扱いにする（呼び出し側の責務）。
type WelcomeMailerPort interface {
	SendWelcomeEmail(ctx context.Context, toEmail string, name string) error
}

// EmailClient は実際のメール送信クライアント（SMTP / SendGrid / SES など）を
// 抽象化した下位レベルのインターフェースです。
type EmailClient interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

// WelcomeMailer は WelcomeMailerPort の具象実装で、
// 内部で EmailClient を利用してメール送信を行います。
type WelcomeMailer struct {
	client      EmailClient
	fromAddress string
	shopBaseURL string // 例: "https://elanor.example.com"
}

// NewWelcomeMailer は WelcomeMailer のコンストラクタです。
func NewWelcomeMailer(client EmailClient, fromAddress, shopBaseURL string) *WelcomeMailer {
	base := strings.TrimRight(shopBaseURL, "/")
	return &WelcomeMailer{
		client:      client,
		fromAddress: fromAddress,
		shopBaseURL: base,
	}
}

// SendWelcomeEmail sends the announcements/drops welcome mail to a new
// subscriber.
func (m *WelcomeMailer) SendWelcomeEmail(ctx context.Context, toEmail string, name string) error {
	if m == nil || m.client == nil {
		return fmt.Errorf("welcome_mailer: email client is nil")
	}

	greeting := "Hello,"
	if n := strings.TrimSpace(name); n != "" {
		greeting = fmt.Sprintf("Hello %s,", n)
	}

	subject := "Welcome to Elanor - Gothic Perfumery"

	body := fmt.Sprintf(`%s

You are now on the Elanor list. Announcements and drops for the seven
sins collection will reach this address first.

Browse the catalog: %s/fragrances

- Elanor
`, greeting, m.shopBaseURL)

	return m.client.Send(ctx, m.fromAddress, toEmail, subject, body)
}

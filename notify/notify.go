// Package notify delivers the generated summary to the user.
package notify

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"
	"github.com/wneessen/go-mail"
)

// Deliverer sends a finished summary to its destination.
type Deliverer interface {
	Deliver(ctx context.Context, subject, body string) error
}

// Mailer delivers summaries over SMTP.
type Mailer struct {
	Host      string
	Port      int
	Sender    string
	Password  string
	Recipient string
}

// Deliver sends the summary as a plain-text email.
func (m *Mailer) Deliver(ctx context.Context, subject, body string) error {
	msg := mail.NewMsg()

	if err := msg.From(m.Sender); err != nil {
		return ErrDelivery.Wrap(err)
	}

	if err := msg.To(m.Recipient); err != nil {
		return ErrDelivery.Wrap(err)
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	client, err := mail.NewClient(
		m.Host,
		mail.WithPort(m.Port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.Sender),
		mail.WithPassword(m.Password),
	)
	if err != nil {
		return ErrDelivery.Wrap(err)
	}

	err = client.DialAndSendWithContext(ctx, msg)
	if err != nil {
		return ErrDelivery.Wrap(err)
	}

	return nil
}

// Desktop shows a system notification once the summary is ready.
func Desktop(title, message string) error {
	return beeep.Notify(title, message, "")
}

// RunHook executes the user-configured command after delivery, passing
// the summary on stdin.
func RunHook(cmdStr, summary string) error {
	args, err := shellquote.Split(cmdStr)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return nil
	}

	name := args[0]

	var cmdArgs []string

	if len(args) > 1 {
		cmdArgs = args[1:]
	}

	cmd := exec.Command(name, cmdArgs...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = strings.NewReader(summary)

	return cmd.Run()
}

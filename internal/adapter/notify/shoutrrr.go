package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"regexp"

	shoutrrr "github.com/nicholas-fedor/shoutrrr"
	router "github.com/nicholas-fedor/shoutrrr/pkg/router"
	stypes "github.com/nicholas-fedor/shoutrrr/pkg/types"

	"github.com/heartmarshall/readtrack-backend/internal/config"
)

// Shoutrrr sends notices through every configured shoutrrr URL.
type Shoutrrr struct {
	sender         *router.ServiceRouter
	subject        string
	appName        string
	recipientParam string
}

// NewShoutrrr builds a sender for cfg.URLs(). The URLs are parsed eagerly so
// a typo fails at startup instead of on the first flag.
func NewShoutrrr(cfg config.NotifyConfig) (*Shoutrrr, error) {
	urls := cfg.URLs()
	if len(urls) == 0 {
		return nil, errors.New("notify: at least one URL is required")
	}

	sender, err := shoutrrr.CreateSender(urls...)
	if err != nil {
		return nil, fmt.Errorf("notify: create sender: %w", redact(err))
	}
	if cfg.Timeout > 0 {
		sender.Timeout = cfg.Timeout
	}
	sender.SetLogger(log.New(io.Discard, "", 0))

	return &Shoutrrr{
		sender:         sender,
		subject:        cfg.Subject,
		appName:        cfg.AppName,
		recipientParam: cfg.RecipientParam,
	}, nil
}

// NotifyViolation sends the notice. The router applies its own timeout;
// ctx is only checked before sending.
func (s *Shoutrrr) NotifyViolation(ctx context.Context, n ViolationNotice) error {
	return s.send(ctx, n.Email, s.subject, renderBody(s.appName, n))
}

// NotifyAccountFrozen sends the account-frozen notice.
func (s *Shoutrrr) NotifyAccountFrozen(ctx context.Context, n AccountFrozenNotice) error {
	return s.send(ctx, n.Email, "Account frozen", renderFrozenBody(s.appName, n))
}

func (s *Shoutrrr) send(ctx context.Context, email, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params := stypes.Params{}
	if subject != "" {
		params.SetTitle(subject)
	}
	if s.recipientParam != "" && email != "" {
		params[s.recipientParam] = email
	}

	var errs []error
	for _, err := range s.sender.Send(body, &params) {
		if err != nil {
			errs = append(errs, redact(err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("notify: send: %w", errors.Join(errs...))
	}
	return nil
}

var credentialsInURL = regexp.MustCompile(`://[^/@\s]+@`)

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }

// redact hides URL credentials that shoutrrr errors may echo back.
func redact(err error) error {
	msg := err.Error()
	clean := credentialsInURL.ReplaceAllString(msg, "://***@")
	if clean == msg {
		return err
	}
	return &redactedError{msg: clean, err: err}
}

// Package verifier classifies the deliverability of candidate mailboxes.
//
// Verification runs in three stages: a syntax check (no network), a DNS MX
// lookup, and a short mail-transport session against the best-preference
// exchange host. The transport session probes a deliberately fabricated
// local-part first to detect catch-all domains, then the real address.
// Verification never aborts the calling scan: anything short of a definitive
// accept or reject degrades the result to risky.
package verifier

import (
	"context"
	"fmt"
	"net"
	"net/textproto"
	"regexp"
	"strings"
	"time"

	"leadhunter/pkg/domain"
	"leadhunter/pkg/logger"
	"leadhunter/pkg/serrors"

	"go.uber.org/zap"
)

const (
	smtpPort = "25"

	// catchAllLocalPart is the fabricated mailbox used to estimate catch-all
	// behavior. No sane directory contains it.
	catchAllLocalPart = "zxq9-deliverability-probe-k3j7f"

	smtpCodeOK       = 250
	smtpCodeNoUser   = 550
	smtpCodeGreeting = 220
)

// emailSyntax is the minimal local@host shape with at least one dot in the
// host part, matching what the rest of the pipeline generates.
var emailSyntax = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Resolver looks up mail exchanges for a host. *net.Resolver satisfies it.
//
//go:generate mockgen -package mockverifier -source=verifier.go -destination=mock/mockverifier.go *
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
}

// Dialer opens transport connections. *net.Dialer satisfies it.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Options configure the verifier.
type Options struct {
	// SessionTimeout bounds one whole transport session, greeting to QUIT.
	SessionTimeout time.Duration
	// HelloName is the identity announced in the HELO greeting.
	HelloName string
	// FromEmail is the null/test sender used in MAIL FROM.
	FromEmail string
}

// Verifier probes mailboxes. It is stateless and safe for concurrent use;
// scan-scoped caching lives in Session.
type Verifier struct {
	resolver Resolver
	dialer   Dialer
	options  Options
}

// New creates a Verifier. A nil resolver or dialer falls back to the net
// package defaults.
func New(resolver Resolver, dialer Dialer, options Options) *Verifier {
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	if dialer == nil {
		dialer = &net.Dialer{}
	}
	if options.SessionTimeout <= 0 {
		options.SessionTimeout = 3 * time.Second
	}

	return &Verifier{
		resolver: resolver,
		dialer:   dialer,
		options:  options,
	}
}

// Session carries the per-scan verification state: catch-all verdicts are
// established once per domain and reused for every later probe in the same
// scan, so an accepted fabricated address keeps demoting real acceptances to
// risky for the scan's whole lifetime.
type Session struct {
	verifier *Verifier
	catchAll map[string]bool
}

// NewSession creates a scan-scoped verification session.
func (v *Verifier) NewSession() *Session {
	return &Session{
		verifier: v,
		catchAll: make(map[string]bool),
	}
}

// Verify classifies one email address. Malformed addresses are rejected
// without any network call; domains without MX records are invalid without
// transport probing; everything else goes through the transport session.
// The probe itself is never interrupted mid-flight: cancellation takes effect
// through the session deadline.
func (s *Session) Verify(ctx context.Context, email string) domain.VerificationResult {
	res := domain.VerificationResult{Email: email}

	if !emailSyntax.MatchString(email) {
		res.Classification = domain.ClassificationInvalid

		return res
	}

	host := email[strings.LastIndexByte(email, '@')+1:]

	exchange, err := s.verifier.lookupExchange(ctx, host)
	if err != nil {
		// no mail configured for the domain at all
		res.Classification = domain.ClassificationInvalid

		return res
	}
	res.HasMX = true

	known := s.catchAllState(host)
	code, catchAll, err := s.verifier.probe(ctx, exchange, host, email, known)
	if err == nil || known != nil {
		// only cache verdicts the fabricated probe actually established
		s.catchAll[host] = catchAll
	}
	res.CatchAll = catchAll

	switch {
	case err != nil:
		// firewall drop, timeout, odd greeting: inconclusive, never fatal
		logger.Debug(ctx, "mailbox probe degraded",
			zap.String("email", email),
			zap.Error(err))
		res.Classification = domain.ClassificationRisky
	case code == smtpCodeOK && catchAll:
		res.Classification = domain.ClassificationRisky
	case code == smtpCodeOK:
		res.Classification = domain.ClassificationValid
	case code == smtpCodeNoUser:
		res.Classification = domain.ClassificationInvalid
	default:
		// greylisting or another unexpected code
		res.Classification = domain.ClassificationRisky
	}

	return res
}

// VerifyMXOnly classifies an address by syntax and MX resolution alone,
// skipping the transport probe. Used for short permutations when full
// verification is disabled; an address that resolves is reported risky, since
// nothing vouched for the mailbox itself.
func (s *Session) VerifyMXOnly(ctx context.Context, email string) domain.VerificationResult {
	res := domain.VerificationResult{Email: email}

	if !emailSyntax.MatchString(email) {
		res.Classification = domain.ClassificationInvalid

		return res
	}

	host := email[strings.LastIndexByte(email, '@')+1:]
	if _, err := s.verifier.lookupExchange(ctx, host); err != nil {
		res.Classification = domain.ClassificationInvalid

		return res
	}

	res.HasMX = true
	res.Classification = domain.ClassificationRisky

	return res
}

// catchAllState returns the cached catch-all verdict for the host, when one
// exists from an earlier probe in this session.
func (s *Session) catchAllState(host string) *bool {
	if v, ok := s.catchAll[host]; ok {
		return &v
	}

	return nil
}

// lookupExchange resolves the best-preference mail exchange for the host.
func (v *Verifier) lookupExchange(ctx context.Context, host string) (string, error) {
	mxs, err := v.resolver.LookupMX(ctx, host)
	if err != nil {
		return "", fmt.Errorf("could not resolve MX: %w", err)
	}
	if len(mxs) == 0 || mxs[0].Host == "" {
		return "", serrors.With(serrors.ErrNotFound, "no MX records for %s", host)
	}

	// net.LookupMX returns records sorted by preference
	return strings.TrimSuffix(mxs[0].Host, "."), nil
}

// probe opens one transport session against the exchange and issues up to two
// RCPT commands: the fabricated catch-all estimate (unless already known for
// this host) and the real address. It returns the real address's response
// code and the catch-all verdict. The whole session is bounded by the
// configured timeout via a connection deadline, so a hung remote cannot stall
// the scan past that bound.
func (v *Verifier) probe(ctx context.Context, exchange, host, email string, knownCatchAll *bool) (int, bool, error) {
	dialCtx, cancel := context.WithTimeout(ctx, v.options.SessionTimeout)
	defer cancel()

	conn, err := v.dialer.DialContext(dialCtx, "tcp", net.JoinHostPort(exchange, smtpPort))
	if err != nil {
		return 0, boolValue(knownCatchAll), serrors.Wrap(serrors.ErrTransportUnreachable, err,
			"could not connect to %s", exchange)
	}
	defer func() {
		_ = conn.Close()
	}()
	_ = conn.SetDeadline(time.Now().Add(v.options.SessionTimeout))

	tp := textproto.NewConn(conn)
	defer func() {
		_ = tp.Close()
	}()

	if _, _, err := tp.ReadResponse(smtpCodeGreeting); err != nil {
		return 0, boolValue(knownCatchAll), serrors.Wrap(serrors.ErrProtocolAnomaly, err, "bad greeting from %s", exchange)
	}
	if err := v.command(tp, smtpCodeOK, "HELO %s", v.options.HelloName); err != nil {
		return 0, boolValue(knownCatchAll), err
	}
	if err := v.command(tp, smtpCodeOK, "MAIL FROM:<%s>", v.options.FromEmail); err != nil {
		return 0, boolValue(knownCatchAll), err
	}

	catchAll := boolValue(knownCatchAll)
	if knownCatchAll == nil {
		code, err := v.rcpt(tp, catchAllLocalPart+"@"+host)
		if err != nil {
			return 0, false, err
		}
		catchAll = code == smtpCodeOK
	}

	code, err := v.rcpt(tp, email)
	if err != nil {
		return 0, catchAll, err
	}

	// best effort; the verdict is already in
	_ = tp.PrintfLine("QUIT")

	return code, catchAll, nil
}

// command sends one line and requires the expected success code.
func (v *Verifier) command(tp *textproto.Conn, expect int, format string, args ...any) error {
	if err := tp.PrintfLine(format, args...); err != nil {
		return serrors.Wrap(serrors.ErrTransportUnreachable, err, "could not send command")
	}
	if _, _, err := tp.ReadResponse(expect); err != nil {
		return serrors.Wrap(serrors.ErrProtocolAnomaly, err, "unexpected response")
	}

	return nil
}

// rcpt issues RCPT TO and returns the raw response code. The status check is
// disabled so definitive rejects (550) come back as a code, not an error.
func (v *Verifier) rcpt(tp *textproto.Conn, email string) (int, error) {
	if err := tp.PrintfLine("RCPT TO:<%s>", email); err != nil {
		return 0, serrors.Wrap(serrors.ErrTransportUnreachable, err, "could not send RCPT")
	}

	code, _, err := tp.ReadResponse(-1)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrProtocolAnomaly, err, "could not read RCPT response")
	}

	return code, nil
}

func boolValue(b *bool) bool {
	return b != nil && *b
}

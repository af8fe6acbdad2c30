package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	sandbox "github.com/jsamuelsen/gateway-client/internal/adapters/http"
	"github.com/jsamuelsen/gateway-client/internal/adapters/http/handlers"
	"github.com/jsamuelsen/gateway-client/internal/adapters/storage/ledger"
	"github.com/jsamuelsen/gateway-client/internal/app"
	"github.com/jsamuelsen/gateway-client/internal/domain"
	"github.com/jsamuelsen/gateway-client/internal/ports"
)

var errUnhealthy = errors.New("gateway unhealthy")

func (c *cli) charges(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: charges needs a subcommand", errUsage)
	}

	gw, err := c.gateway()
	if err != nil {
		return err
	}

	sub, args := args[0], args[1:]
	fs := c.flagSet("charges " + sub)

	switch sub {
	case "create":
		var (
			req        domain.ChargeRequest
			card       domain.CardRequest
			uncaptured bool
			reqOpts    requestFlags
		)

		fs.Int64Var(&req.Amount, "amount", 0, "amount in minor units")
		fs.StringVar(&req.Currency, "currency", "", "ISO 4217 currency code")
		fs.StringVar(&req.Description, "description", "", "charge description")
		fs.StringVar(&req.CustomerID, "customer", "", "charge a saved customer instead of a card")
		fs.StringVar(&card.Number, "card", "", "card number")
		fs.StringVar(&card.ExpMonth, "exp-month", "", "card expiry month")
		fs.StringVar(&card.ExpYear, "exp-year", "", "card expiry year")
		fs.StringVar(&card.Cvc, "cvc", "", "card security code")
		fs.BoolVar(&uncaptured, "uncaptured", false, "authorize only, capture later")
		fs.Func("metadata", "key=value, repeatable", metadataFlag(&req.Metadata))
		reqOpts.register(fs)

		if err := fs.Parse(args); err != nil {
			return err
		}

		if card.Number != "" {
			req.Card = &card
		}

		if uncaptured {
			captured := false
			req.Captured = &captured
		}

		opts, err := reqOpts.options()
		if err != nil {
			return err
		}

		return c.print(gw.Charges.Create(ctx, &req, opts...))

	case "get":
		id, err := oneID(fs, args)
		if err != nil {
			return err
		}

		return c.print(gw.Charges.Get(ctx, id))

	case "update":
		var (
			req  domain.ChargeUpdateRequest
			opts requestFlags
		)

		fs.StringVar(&req.Description, "description", "", "new description")
		fs.StringVar(&req.CustomerID, "customer", "", "attach to customer")
		fs.Func("metadata", "key=value, repeatable", metadataFlag(&req.Metadata))
		opts.register(fs)

		id, err := oneID(fs, args)
		if err != nil {
			return err
		}

		o, err := opts.options()
		if err != nil {
			return err
		}

		return c.print(gw.Charges.Update(ctx, id, &req, o...))

	case "capture":
		var key string
		fs.StringVar(&key, "idempotency-key", "", "idempotency key")

		id, err := oneID(fs, args)
		if err != nil {
			return err
		}

		return c.print(gw.Charges.Capture(ctx, id, domain.WithIdempotencyKey(key)))

	case "list":
		var lf listFlags
		lf.register(fs)

		if err := fs.Parse(args); err != nil {
			return err
		}

		params, err := lf.params()
		if err != nil {
			return err
		}

		return c.print(gw.Charges.List(ctx, params))

	default:
		return fmt.Errorf("%w: unknown charges subcommand %q", errUsage, sub)
	}
}

func (c *cli) disputes(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: disputes needs a subcommand", errUsage)
	}

	gw, err := c.gateway()
	if err != nil {
		return err
	}

	sub, args := args[0], args[1:]
	fs := c.flagSet("disputes " + sub)

	switch sub {
	case "get":
		if err := fs.Parse(args); err != nil {
			return err
		}

		switch fs.NArg() {
		case 0:
			return fmt.Errorf("%w: dispute id required", errUsage)
		case 1:
			return c.print(gw.Disputes.Get(ctx, fs.Arg(0)))
		default:
			return c.print(c.disputeService(gw, 0, 0).GetMany(ctx, fs.Args()))
		}

	case "update":
		var (
			evidence string
			opts     requestFlags
		)

		fs.StringVar(&evidence, "evidence", "", `evidence as JSON, e.g. {"customerName":"Jane"}`)
		opts.register(fs)

		id, err := oneID(fs, args)
		if err != nil {
			return err
		}

		o, err := opts.options()
		if err != nil {
			return err
		}

		var req *domain.DisputeUpdateRequest

		if evidence != "" {
			var ev domain.DisputeEvidence

			dec := json.NewDecoder(strings.NewReader(evidence))
			dec.DisallowUnknownFields()

			if err := dec.Decode(&ev); err != nil {
				return fmt.Errorf("%w: parsing -evidence: %v", errUsage, err)
			}

			req = &domain.DisputeUpdateRequest{Evidence: &ev}
		}

		return c.print(gw.Disputes.Update(ctx, id, req, o...))

	case "close":
		var (
			key    string
			verify bool
		)

		fs.StringVar(&key, "idempotency-key", "", "idempotency key (single dispute only)")
		fs.BoolVar(&verify, "verify", false, "read the dispute back and confirm it closed")

		if err := fs.Parse(args); err != nil {
			return err
		}

		ids := fs.Args()

		switch {
		case len(ids) == 0:
			return fmt.Errorf("%w: dispute id required", errUsage)
		case len(ids) > 1 && key != "":
			return fmt.Errorf("%w: -idempotency-key needs exactly one dispute", errUsage)
		case len(ids) > 1:
			return c.printCloseResults(ids, c.disputeService(gw, 0, 0).CloseMany(ctx, ids))
		case verify:
			return c.print(c.disputeService(gw, 0, 0).CloseAndVerify(ctx, ids[0], domain.WithIdempotencyKey(key)))
		default:
			return c.print(gw.Disputes.Close(ctx, ids[0], domain.WithIdempotencyKey(key)))
		}

	case "list":
		var lf listFlags
		lf.register(fs)

		if err := fs.Parse(args); err != nil {
			return err
		}

		params, err := lf.params()
		if err != nil {
			return err
		}

		return c.print(gw.Disputes.List(ctx, params))

	case "await":
		attempts := fs.Int("attempts", c.cfg.Poll.Attempts, "charge status checks before giving up")
		interval := fs.Duration("interval", c.cfg.Poll.Interval, "wait between checks")

		chargeID, err := oneID(fs, args)
		if err != nil {
			return err
		}

		return c.print(c.disputeService(gw, *attempts, *interval).AwaitDispute(ctx, chargeID))

	default:
		return fmt.Errorf("%w: unknown disputes subcommand %q", errUsage, sub)
	}
}

func (c *cli) health(ctx context.Context) error {
	gw, err := c.gateway()
	if err != nil {
		return err
	}

	registry := ports.NewHealthRegistry(ports.WithCheckTimeout(c.cfg.Gateway.Timeout))
	if err := registry.Register(gw); err != nil {
		return err
	}

	result := registry.CheckAll(ctx)
	if err := c.write(result); err != nil {
		return err
	}

	if !result.Healthy() {
		return errUnhealthy
	}

	return nil
}

func (c *cli) sandbox(ctx context.Context) error {
	cfg := c.cfg.Sandbox
	server := sandbox.New(&cfg, c.logger)

	opts := sandbox.SandboxOptions{
		SecretKey:   c.cfg.Gateway.SecretKey,
		Logger:      c.logger,
		ServiceName: sandbox.DefaultSandboxServiceName,
		BuildInfo:   handlers.NewBuildInfo(Version, Commit, BuildTime),
		Store:       handlers.StoreConfig{DisputeDelay: cfg.DisputeDelay},
	}

	if cfg.LedgerPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LedgerPath), 0o750); err != nil {
			return fmt.Errorf("creating ledger directory: %w", err)
		}

		l, err := ledger.OpenBolt(cfg.LedgerPath)
		if err != nil {
			return err
		}

		defer func() {
			if err := l.Close(); err != nil {
				c.logger.Error("closing ledger", slog.Any("error", err))
			}
		}()

		opts.Ledger = l
	}

	if _, err := sandbox.NewSandbox(server.Engine(), opts); err != nil {
		return err
	}

	serverErr := server.Start()

	return waitForShutdown(ctx, c.logger, server, serverErr, cfg.ShutdownTimeout)
}

func (c *cli) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.errOut)

	return fs
}

// print writes v as indented JSON, or returns err.
func (c *cli) print(v any, err error) error {
	if err != nil {
		return err
	}

	return c.write(v)
}

func (c *cli) write(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

type closeResult struct {
	ID      string          `json:"id"`
	Dispute *domain.Dispute `json:"dispute,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func (c *cli) printCloseResults(ids []string, results []app.PartialResult[*domain.Dispute]) error {
	out := make([]closeResult, len(results))
	failed := 0

	for i, r := range results {
		out[i] = closeResult{ID: ids[i], Dispute: r.Value}
		if r.Err != nil {
			out[i].Error = r.Err.Error()
			failed++
		}
	}

	if err := c.write(out); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d disputes not closed", failed, len(ids))
	}

	return nil
}

// oneID parses fs and returns its single positional argument.
func oneID(fs *flag.FlagSet, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", err
	}

	if fs.NArg() != 1 {
		return "", fmt.Errorf("%w: %s takes exactly one id", errUsage, fs.Name())
	}

	return fs.Arg(0), nil
}

// requestFlags are the per-request options of mutating commands.
type requestFlags struct {
	key     string
	rawFile string
}

func (r *requestFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&r.key, "idempotency-key", "", "idempotency key")
	fs.StringVar(&r.rawFile, "raw", "", "send this file as the request body, byte for byte")
}

func (r *requestFlags) options() ([]domain.RequestOption, error) {
	opts := []domain.RequestOption{domain.WithIdempotencyKey(r.key)}

	if r.rawFile != "" {
		raw, err := os.ReadFile(r.rawFile)
		if err != nil {
			return nil, fmt.Errorf("reading raw body: %w", err)
		}

		opts = append(opts, domain.WithRawBody(raw))
	}

	return opts, nil
}

type listFlags struct {
	limit      int
	after      string
	before     string
	total      bool
	createdGte string
	createdLte string
}

func (l *listFlags) register(fs *flag.FlagSet) {
	fs.IntVar(&l.limit, "limit", 0, "page size, at most 100")
	fs.StringVar(&l.after, "after", "", "continue after this id")
	fs.StringVar(&l.before, "before", "", "page ending before this id")
	fs.BoolVar(&l.total, "total", false, "include the total count")
	fs.StringVar(&l.createdGte, "created-since", "", "RFC 3339 lower bound on creation time")
	fs.StringVar(&l.createdLte, "created-until", "", "RFC 3339 upper bound on creation time")
}

func (l *listFlags) params() (domain.ListParams, error) {
	p := domain.ListParams{
		Limit:             l.limit,
		StartingAfterID:   l.after,
		EndingBeforeID:    l.before,
		IncludeTotalCount: l.total,
	}

	var err error

	if p.CreatedGte, err = parseTime("created-since", l.createdGte); err != nil {
		return p, err
	}

	if p.CreatedLte, err = parseTime("created-until", l.createdLte); err != nil {
		return p, err
	}

	return p, nil
}

func parseTime(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("%w: -%s: %v", errUsage, name, err)
	}

	return &t, nil
}

func metadataFlag(dst *map[string]string) func(string) error {
	return func(s string) error {
		k, v, ok := strings.Cut(s, "=")
		if !ok || k == "" {
			return fmt.Errorf("want key=value, got %q", s)
		}

		if *dst == nil {
			*dst = make(map[string]string)
		}

		(*dst)[k] = v

		return nil
	}
}

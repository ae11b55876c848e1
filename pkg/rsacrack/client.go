package rsacrack

import (
	"context"
	"io"
	"log/slog"

	"github.com/pkg/errors"
)

// Client runs a sequence of key-recovery attacks against a target,
// stopping at the first success. The zero value is not usable; construct
// with NewClient.
type Client struct {
	attacks []Attack
	logger  *slog.Logger
}

// NewClient creates a client with the default attack sequence and a
// discarded log output.
func NewClient() *Client {
	return &Client{
		attacks: DefaultAttacks(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithAttacks replaces the attack sequence.
func (c *Client) WithAttacks(attacks ...Attack) *Client {
	c.attacks = attacks
	return c
}

// WithLogger sets the progress logger.
func (c *Client) WithLogger(logger *slog.Logger) *Client {
	c.logger = logger
	return c
}

// Crack runs the configured attacks in order against the target and
// returns the first recovery. The context is checked between attacks;
// within an attack, cancellation is bounded by the iteration budget. A
// target no attack can break yields an error at this layer, since a
// caller of the facade asked for a key, not for a survey.
func (c *Client) Crack(ctx context.Context, target *Target) (*Result, error) {
	if target == nil || target.Key == nil {
		return nil, errors.Wrap(ErrInvalidInput, "crack: nil target")
	}
	if err := target.Key.Validate(); err != nil {
		return nil, errors.WithMessage(err, "crack")
	}

	for _, attack := range c.attacks {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		c.logger.Info("running attack", "attack", attack.Name(), "bits", target.Key.BitLen())
		result, err := attack.Run(ctx, target)
		if err != nil {
			return nil, errors.WithMessagef(err, "attack %s", attack.Name())
		}
		if result != nil {
			c.logger.Info("key recovered", "attack", attack.Name())
			return result, nil
		}
		c.logger.Info("attack found no solution", "attack", attack.Name())
	}

	return nil, errors.Errorf("rsacrack: no attack recovered the key (tried %d)", len(c.attacks))
}

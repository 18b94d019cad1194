package httpclient

import (
	"context"
	"fmt"

	"github.com/kbukum/testrail/binding"
	"github.com/kbukum/testrail/errors"
	"github.com/kbukum/testrail/logger"
	"github.com/kbukum/testrail/page"
)

// None executes d and discards the response body.
func None(ctx context.Context, c *Client, d Description) error {
	if _, err := c.do(ctx, d); err != nil {
		return c.fail(ctx, d, err)
	}
	return nil
}

// One executes d and decodes the body as a single T.
func One[T any](ctx context.Context, c *Client, d Description, dec binding.Decoder[T]) (T, error) {
	var zero T
	if dec == nil {
		return zero, c.fail(ctx, d, errors.Decode(d.Path, fmt.Errorf("no decoder")))
	}
	body, err := c.do(ctx, d)
	if err != nil {
		return zero, c.fail(ctx, d, err)
	}
	raw, err := binding.Object(body)
	if err != nil {
		return zero, c.fail(ctx, d, err)
	}
	out, err := dec(raw, d.Schema)
	if err != nil {
		return zero, c.fail(ctx, d, err)
	}
	return out, nil
}

// All executes d and returns every item. KindList expects a bare array.
// KindPaginated follows next links until the last page and returns the
// items of all pages in order; a bare array is accepted as a single page.
// Any error discards the items gathered so far.
func All[T any](ctx context.Context, c *Client, d Description, dec binding.Decoder[T]) ([]T, error) {
	if dec == nil {
		return nil, c.fail(ctx, d, errors.Decode(d.Path, fmt.Errorf("no item decoder")))
	}

	body, err := c.do(ctx, d)
	if err != nil {
		return nil, c.fail(ctx, d, err)
	}
	if d.Kind != KindPaginated || !page.IsEnvelope(body) {
		items, err := page.DecodeArray(body, dec, d.Schema)
		if err != nil {
			return nil, c.fail(ctx, d, err)
		}
		return items, nil
	}

	field, err := page.ResourceField(d.Path)
	if err != nil {
		return nil, c.fail(ctx, d, err)
	}

	var items []T
	for n := 1; ; n++ {
		env, err := page.Decode(body, field, dec, d.Schema)
		if err != nil {
			return nil, c.fail(ctx, d, err)
		}
		items = append(items, env.Items...)
		c.inst.Page(ctx, field, n, len(env.Items))
		c.log.Debug("page decoded", logger.Fields(
			logger.FieldPage, n,
			logger.FieldItems, len(env.Items),
		))

		if env.Next == nil {
			return items, nil
		}
		d = d.follow(c.continuation(*env.Next))
		if body, err = c.do(ctx, d); err != nil {
			return nil, c.fail(ctx, d, err)
		}
	}
}

func (c *Client) fail(ctx context.Context, d Description, err error) error {
	c.inst.Fail(ctx, err)
	c.log.Debug("request failed", logger.Fields(
		logger.FieldMethod, d.Method,
		logger.FieldURL, d.Path,
		logger.FieldError, err.Error(),
	))
	return err
}

package wulai

import "context"

type nlpQueryParams struct {
	Query string `json:"query" validate:"required,max=1024"`
}

func (c *Client) ExtractEntities(ctx context.Context, query string) (*EntityExtract, error) {
	var out EntityExtract
	if _, err := c.call(ctx, "/nlp/entities/extract", nlpQueryParams{Query: query}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) Tokenize(ctx context.Context, query string) (*Tokenize, error) {
	var out Tokenize
	if _, err := c.call(ctx, "/nlp/tokenize", nlpQueryParams{Query: query}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

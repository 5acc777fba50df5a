package session

import (
	"context"

	"github.com/chronicledb/chronicle-go-sdk/internal/endpoint"
)

// Client binds the session token into every endpoint call. It is the
// transaction.Client implementation of this package.
type Client struct {
	endpoint   endpoint.Endpoint
	ledgerName string
	token      string
	id         string
}

func (c *Client) StartTransaction(ctx context.Context) (*endpoint.StartTransactionResult, error) {
	return c.endpoint.StartTransaction(ctx, c.token)
}

func (c *Client) ExecuteStatement(ctx context.Context, txID, statement string, parameters [][]byte) (*endpoint.ExecuteStatementResult, error) {
	return c.endpoint.ExecuteStatement(ctx, c.token, txID, statement, parameters)
}

func (c *Client) FetchPage(ctx context.Context, txID, nextPageToken string) (*endpoint.FetchPageResult, error) {
	return c.endpoint.FetchPage(ctx, c.token, txID, nextPageToken)
}

func (c *Client) CommitTransaction(ctx context.Context, txID string, commitDigest []byte) (*endpoint.CommitTransactionResult, error) {
	return c.endpoint.CommitTransaction(ctx, c.token, txID, commitDigest)
}

func (c *Client) AbortTransaction(ctx context.Context) error {
	return c.endpoint.AbortTransaction(ctx, c.token)
}

func (c *Client) EndSession(ctx context.Context) error {
	return c.endpoint.EndSession(ctx, c.token)
}

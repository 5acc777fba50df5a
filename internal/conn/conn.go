// Package conn is the gRPC transport of the driver. It speaks the unary
// send-command protocol of the ledger session service and translates wire
// failures into the driver error taxonomy.
package conn

import (
	"context"
	"crypto/tls"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	grpcCredentials "google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/chronicledb/chronicle-go-sdk/credentials"
	"github.com/chronicledb/chronicle-go-sdk/internal/endpoint"
	"github.com/chronicledb/chronicle-go-sdk/internal/xerrors"
)

const (
	sendCommandMethod = "/chronicle.session.v1.SessionService/SendCommand"

	authTokenHeader = "x-chronicle-auth-token"
	requestIDHeader = "x-request-id"
)

var _ endpoint.Endpoint = (*Conn)(nil)

// Conn is one client connection to the session service. gRPC multiplexes
// concurrent calls over it.
type Conn struct {
	cc    *grpc.ClientConn
	creds credentials.Credentials
}

type Option func(c *connConfig)

type connConfig struct {
	secure    bool
	creds     credentials.Credentials
	tlsConfig *tls.Config
	grpcOpts  []grpc.DialOption
}

// WithSecure enables TLS on the connection.
func WithSecure(secure bool) Option {
	return func(c *connConfig) {
		c.secure = secure
	}
}

// WithCredentials sets the auth token source.
func WithCredentials(creds credentials.Credentials) Option {
	return func(c *connConfig) {
		c.creds = creds
	}
}

// WithTLSConfig replaces the default TLS configuration. Implies secure.
func WithTLSConfig(tlsConfig *tls.Config) Option {
	return func(c *connConfig) {
		c.secure = true
		c.tlsConfig = tlsConfig
	}
}

// WithGrpcOptions appends raw grpc dial options.
func WithGrpcOptions(opts ...grpc.DialOption) Option {
	return func(c *connConfig) {
		c.grpcOpts = append(c.grpcOpts, opts...)
	}
}

// New creates a lazily dialed connection to address.
func New(address string, opts ...Option) (*Conn, error) {
	cfg := connConfig{
		creds: credentials.NewAnonymousCredentials(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	transport := insecure.NewCredentials()
	if cfg.secure {
		transport = grpcCredentials.NewTLS(cfg.tlsConfig)
	}
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(transport),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(codecName)),
	}, cfg.grpcOpts...)
	cc, err := grpc.NewClient(address, dialOpts...)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return &Conn{cc: cc, creds: cfg.creds}, nil
}

func (c *Conn) Close() error {
	if err := c.cc.Close(); err != nil {
		return xerrors.WithStackTrace(err)
	}

	return nil
}

// invoke sends one command envelope and decodes the reply envelope. An Error
// member in the reply becomes an operation error; a gRPC failure becomes a
// transport error.
func (c *Conn) invoke(ctx context.Context, cmd *command) (*commandResult, error) {
	token, err := c.creds.Token(ctx)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}
	md := metadata.Pairs(requestIDHeader, uuid.NewString())
	if token != "" {
		md.Set(authTokenHeader, token)
	}
	ctx = metadata.NewOutgoingContext(ctx, md)

	var result commandResult
	if err = c.cc.Invoke(ctx, sendCommandMethod, cmd, &result); err != nil {
		return nil, xerrors.WithStackTrace(
			xerrors.FromGRPC(err, xerrors.WithAddress(c.cc.Target())),
		)
	}
	if result.Error != nil {
		return nil, xerrors.WithStackTrace(xerrors.Operation(
			xerrors.WithStatusCode(statusCode(result.Error.Code)),
			xerrors.WithMessage(result.Error.Message),
		))
	}

	return &result, nil
}

func (c *Conn) StartSession(ctx context.Context, ledgerName string) (*endpoint.StartSessionResult, error) {
	result, err := c.invoke(ctx, &command{
		StartSession: &startSessionRequest{LedgerName: ledgerName},
	})
	if err != nil {
		return nil, err
	}
	if result.StartSession == nil {
		return nil, xerrors.WithStackTrace(errMalformedReply)
	}

	return &endpoint.StartSessionResult{
		SessionToken: result.StartSession.SessionToken,
		SessionID:    result.StartSession.SessionID,
	}, nil
}

func (c *Conn) StartTransaction(ctx context.Context, sessionToken string) (*endpoint.StartTransactionResult, error) {
	result, err := c.invoke(ctx, &command{
		SessionToken:     &sessionToken,
		StartTransaction: &startTransactionRequest{},
	})
	if err != nil {
		return nil, err
	}
	if result.StartTransaction == nil {
		return nil, xerrors.WithStackTrace(errMalformedReply)
	}

	return &endpoint.StartTransactionResult{
		TransactionID: result.StartTransaction.TransactionID,
	}, nil
}

func (c *Conn) ExecuteStatement(ctx context.Context, sessionToken, txID, statement string, parameters [][]byte) (*endpoint.ExecuteStatementResult, error) {
	result, err := c.invoke(ctx, &command{
		SessionToken: &sessionToken,
		ExecuteStatement: &executeStatementRequest{
			TransactionID: txID,
			Statement:     statement,
			Parameters:    parameters,
		},
	})
	if err != nil {
		return nil, err
	}
	if result.ExecuteStatement == nil {
		return nil, xerrors.WithStackTrace(errMalformedReply)
	}

	return &endpoint.ExecuteStatementResult{
		FirstPage:         result.ExecuteStatement.FirstPage.toPage(),
		ConsumedIOs:       result.ExecuteStatement.ConsumedIOs.toIOUsage(),
		TimingInformation: result.ExecuteStatement.TimingInformation.toTiming(),
	}, nil
}

func (c *Conn) FetchPage(ctx context.Context, sessionToken, txID, nextPageToken string) (*endpoint.FetchPageResult, error) {
	result, err := c.invoke(ctx, &command{
		SessionToken: &sessionToken,
		FetchPage: &fetchPageRequest{
			TransactionID: txID,
			NextPageToken: nextPageToken,
		},
	})
	if err != nil {
		return nil, err
	}
	if result.FetchPage == nil {
		return nil, xerrors.WithStackTrace(errMalformedReply)
	}

	return &endpoint.FetchPageResult{
		Page:              result.FetchPage.Page.toPage(),
		ConsumedIOs:       result.FetchPage.ConsumedIOs.toIOUsage(),
		TimingInformation: result.FetchPage.TimingInformation.toTiming(),
	}, nil
}

func (c *Conn) CommitTransaction(ctx context.Context, sessionToken, txID string, commitDigest []byte) (*endpoint.CommitTransactionResult, error) {
	result, err := c.invoke(ctx, &command{
		SessionToken: &sessionToken,
		CommitTransaction: &commitTransactionRequest{
			TransactionID: txID,
			CommitDigest:  commitDigest,
		},
	})
	if err != nil {
		return nil, err
	}
	if result.CommitTransaction == nil {
		return nil, xerrors.WithStackTrace(errMalformedReply)
	}

	return &endpoint.CommitTransactionResult{
		CommitDigest: result.CommitTransaction.CommitDigest,
	}, nil
}

func (c *Conn) AbortTransaction(ctx context.Context, sessionToken string) error {
	_, err := c.invoke(ctx, &command{
		SessionToken:     &sessionToken,
		AbortTransaction: &abortTransactionRequest{},
	})

	return err
}

func (c *Conn) EndSession(ctx context.Context, sessionToken string) error {
	_, err := c.invoke(ctx, &command{
		SessionToken: &sessionToken,
		EndSession:   &endSessionRequest{},
	})

	return err
}

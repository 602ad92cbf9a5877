package midtrans

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	mtgo "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/muhammadheryan/marketplace/cmd/config"
	"github.com/muhammadheryan/marketplace/model"
	"github.com/muhammadheryan/marketplace/utils/logger"
)

// Client talks to the Snap API and verifies notification signatures.
type Client interface {
	CreateTransaction(ctx context.Context, req *model.PaymentTransaction) (string, error)
	VerifySignature(n *model.WebhookNotification) bool
}

type snapClient struct {
	snap    snap.Client
	cfg     *config.PaymentConfig
	baseURL *url.URL
}

func NewClient(cfg *config.PaymentConfig) (Client, error) {
	env := mtgo.Sandbox
	if cfg.Production {
		env = mtgo.Production
	}

	c := &snapClient{cfg: cfg}
	c.snap.New(cfg.ServerKey, env)

	if cfg.SnapBaseURL != "" {
		u, err := url.Parse(cfg.SnapBaseURL)
		if err != nil || u.Host == "" {
			return nil, fmt.Errorf("invalid snap base url %q", cfg.SnapBaseURL)
		}
		c.baseURL = u
	}
	return c, nil
}

// GatewayOrderID is the order reference shared with the gateway.
func GatewayOrderID(orderID uint64) string {
	return strconv.FormatUint(orderID, 10)
}

// ParseGatewayOrderID reverses GatewayOrderID.
func ParseGatewayOrderID(ref string) (uint64, error) {
	return strconv.ParseUint(ref, 10, 64)
}

func (c *snapClient) CreateTransaction(ctx context.Context, req *model.PaymentTransaction) (string, error) {
	// the SDK builds requests without a context, so the transport carries the caller's
	sc := c.snap
	sc.HttpClient = &mtgo.HttpClientImplementation{
		HttpClient: &http.Client{
			Timeout:   c.cfg.HTTPTimeout,
			Transport: &contextTransport{ctx: ctx, baseURL: c.baseURL, next: http.DefaultTransport},
		},
		Logger: sdkLogger{},
	}

	resp, gwErr := sc.CreateTransaction(&snap.Request{
		TransactionDetails: mtgo.TransactionDetails{
			OrderID: GatewayOrderID(req.OrderID),
			// Snap only accepts whole currency units
			GrossAmt: req.GrossAmount.Ceil().IntPart(),
		},
		CustomerDetail: &mtgo.CustomerDetails{
			FName: req.Customer.Name,
			Email: req.Customer.Email,
			Phone: req.Customer.Phone,
		},
	})
	if gwErr != nil {
		return "", fmt.Errorf("snap create transaction: status %d: %s", gwErr.StatusCode, gwErr.Message)
	}
	if resp == nil || resp.Token == "" {
		var msgs []string
		if resp != nil {
			msgs = resp.ErrorMessages
		}
		return "", fmt.Errorf("snap returned empty token: %v", msgs)
	}

	return resp.Token, nil
}

type contextTransport struct {
	ctx     context.Context
	baseURL *url.URL
	next    http.RoundTripper
}

func (t *contextTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(t.ctx)
	if t.baseURL != nil {
		r.URL.Scheme = t.baseURL.Scheme
		r.URL.Host = t.baseURL.Host
		r.Host = t.baseURL.Host
	}
	return t.next.RoundTrip(r)
}

// sdkLogger routes the SDK's printf logging into zap. Request dumps go to debug.
type sdkLogger struct{}

func (sdkLogger) Error(format string, val ...interface{}) {
	logger.Get().Sugar().Errorf("[midtrans] "+format, val...)
}

func (sdkLogger) Info(format string, val ...interface{}) {
	logger.Get().Sugar().Debugf("[midtrans] "+format, val...)
}

func (sdkLogger) Debug(format string, val ...interface{}) {
	logger.Get().Sugar().Debugf("[midtrans] "+format, val...)
}

// Signature computes sha512(order_id + status_code + gross_amount + server_key) as lowercase hex.
func Signature(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

func (c *snapClient) VerifySignature(n *model.WebhookNotification) bool {
	expected := Signature(n.OrderID, n.StatusCode, n.GrossAmount, c.cfg.ServerKey)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(n.SignatureKey)) == 1
}

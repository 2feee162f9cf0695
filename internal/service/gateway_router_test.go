package service

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/guardianpro/guardianpro-api/internal/models"
	"github.com/guardianpro/guardianpro-api/internal/utils"
)

func testRegistry() *GatewayRegistry {
	r := NewGatewayRegistry()
	r.Register(NewStripeGateway())
	r.Register(NewPayPalGateway())
	r.Register(NewPaynowGateway())
	r.Register(NewEcocashGateway())
	return r
}

func TestRegistryResolvesAllMethods(t *testing.T) {
	r := testRegistry()
	for _, method := range []models.PaymentMethod{
		models.MethodStripe, models.MethodPayPal, models.MethodPaynow, models.MethodEcocash,
	} {
		gw, err := r.Resolve(method)
		if err != nil {
			t.Fatalf("resolve %s failed: %v", method, err)
		}
		if gw.Method() != method {
			t.Fatalf("gateway method want %s, got %s", method, gw.Method())
		}
	}
}

func TestRegistryUnsupportedMethod(t *testing.T) {
	r := testRegistry()
	if _, err := r.Resolve("bitcoin"); err != utils.ErrUnsupportedMethod {
		t.Fatalf("want ErrUnsupportedMethod, got %v", err)
	}
}

func TestMockGatewayCharge(t *testing.T) {
	r := testRegistry()
	req := &ChargeRequest{
		Reference:     "GP1700000000000ABC123",
		Amount:        decimal.NewFromFloat(99.50),
		Currency:      "USD",
		CustomerEmail: "customer@example.com",
		CustomerName:  "Jane Doe",
	}

	for _, method := range []models.PaymentMethod{
		models.MethodStripe, models.MethodPayPal, models.MethodPaynow, models.MethodEcocash,
	} {
		gw, err := r.Resolve(method)
		if err != nil {
			t.Fatalf("resolve %s failed: %v", method, err)
		}
		result, err := gw.Charge(context.Background(), req)
		if err != nil {
			t.Fatalf("charge %s failed: %v", method, err)
		}
		if !result.Success {
			t.Fatalf("charge %s want success", method)
		}
		if !strings.HasPrefix(result.TransactionID, string(method)+"_") {
			t.Fatalf("transaction id %q missing %s_ prefix", result.TransactionID, method)
		}
		if !strings.Contains(string(result.Response), `"mock":true`) {
			t.Fatalf("response %s not marked as mock", result.Response)
		}
	}
}

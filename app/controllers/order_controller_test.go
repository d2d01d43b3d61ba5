package controllers

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ManuelReschke/PixelMart/internal/pkg/payment"
)

type stubGateway struct{}

func (stubGateway) CreateOrder(ctx context.Context, in payment.CreateOrderInput) (*payment.GatewayOrder, error) {
	return &payment.GatewayOrder{ID: "order_stub"}, nil
}

func TestGetGatewayClient_SingleInstanceUnderConcurrency(t *testing.T) {
	gatewayClient = nil
	gatewayClientOnce = sync.Once{}

	const callers = 16
	clients := make([]payment.GatewayClient, callers)

	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer wg.Done()
			clients[i] = getGatewayClient()
		}(i)
	}
	wg.Wait()

	for i := 1; i < callers; i++ {
		assert.Same(t, clients[0], clients[i], "all callers must observe the same client")
	}
}

func TestGetGatewayClient_KeepsInjectedClient(t *testing.T) {
	gatewayClientOnce = sync.Once{}
	injected := stubGateway{}
	gatewayClient = injected

	assert.Equal(t, payment.GatewayClient(injected), getGatewayClient())
}

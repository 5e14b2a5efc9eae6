package mediator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/nations-go/internal/application/mediator"
)

type pingQuery struct{ Value string }

type echoHandler struct{}

func (h *echoHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	q, ok := request.(*pingQuery)
	if !ok {
		return nil, errors.New("invalid request type")
	}
	return "pong:" + q.Value, nil
}

func TestMediator_SendDispatchesToRegisteredHandler(t *testing.T) {
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingQuery](m, &echoHandler{}))

	resp, err := m.Send(context.Background(), &pingQuery{Value: "a"})

	require.NoError(t, err)
	assert.Equal(t, "pong:a", resp)
}

func TestMediator_RejectsDuplicateAndUnknown(t *testing.T) {
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingQuery](m, &echoHandler{}))

	err := mediator.RegisterHandler[*pingQuery](m, &echoHandler{})
	assert.ErrorContains(t, err, "already registered")

	_, err = m.Send(context.Background(), &struct{}{})
	assert.ErrorContains(t, err, "no handler registered")

	_, err = m.Send(context.Background(), nil)
	assert.Error(t, err)
}

func TestMediator_MiddlewareOrder(t *testing.T) {
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingQuery](m, &echoHandler{}))

	var calls []string
	trace := func(name string) mediator.Middleware {
		return func(ctx context.Context, req mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
			calls = append(calls, name+":before")
			resp, err := next(ctx, req)
			calls = append(calls, name+":after")
			return resp, err
		}
	}
	m.Use(trace("outer"))
	m.Use(trace("inner"))

	_, err := m.Send(context.Background(), &pingQuery{})

	require.NoError(t, err)
	assert.Equal(t, []string{"outer:before", "inner:before", "inner:after", "outer:after"}, calls)
}

func TestRequestName(t *testing.T) {
	assert.Equal(t, "pingQuery", mediator.RequestName(&pingQuery{}))
	assert.Equal(t, "pingQuery", mediator.RequestName(pingQuery{}))
	assert.Equal(t, "nil", mediator.RequestName(nil))
}

func TestSendTyped_AssertsResponseType(t *testing.T) {
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingQuery](m, &echoHandler{}))

	got, err := mediator.SendTyped[string](context.Background(), m, &pingQuery{Value: "b"})
	require.NoError(t, err)
	assert.Equal(t, "pong:b", got)

	_, err = mediator.SendTyped[int](context.Background(), m, &pingQuery{Value: "b"})
	assert.ErrorContains(t, err, "unexpected response type string for pingQuery")

	_, err = mediator.SendTyped[string](context.Background(), m, &struct{}{})
	assert.ErrorContains(t, err, "no handler registered")
}

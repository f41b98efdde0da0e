// funcs.go provides wrappers to turn plain functions into pipeline stages.

// Package boilerplate contains ready-made building blocks for stages.
package boilerplate

import (
	"context"

	"github.com/xaionaro-go/framepipe/frame"
	"github.com/xaionaro-go/framepipe/node"
	"github.com/xaionaro-go/framepipe/types"
)

type FuncsToSource struct {
	Name     string
	PollFunc func(ctx context.Context) (types.Poll[frame.Optional], error)
}

var _ node.Source = (*FuncsToSource)(nil)

func (f *FuncsToSource) String() string {
	if f.Name == "" {
		return "FuncsToSource"
	}
	return f.Name
}

// Poll reports end-of-stream if PollFunc is not set.
func (f *FuncsToSource) Poll(ctx context.Context) (types.Poll[frame.Optional], error) {
	if f.PollFunc == nil {
		return types.Ready(frame.EndOfStream()), nil
	}
	return f.PollFunc(ctx)
}

type FuncsToSink struct {
	Name             string
	StartSendFunc    func(ctx context.Context, f frame.Frame) (types.SendResult[frame.Frame], error)
	PollCompleteFunc func(ctx context.Context) (types.Poll[types.Unit], error)
	PollCloseFunc    func(ctx context.Context) (types.Poll[types.Unit], error)
}

var _ node.Sink = (*FuncsToSink)(nil)

func (f *FuncsToSink) String() string {
	if f.Name == "" {
		return "FuncsToSink"
	}
	return f.Name
}

func (f *FuncsToSink) StartSend(ctx context.Context, in frame.Frame) (types.SendResult[frame.Frame], error) {
	if f.StartSendFunc == nil {
		return types.Accepted[frame.Frame](), nil
	}
	return f.StartSendFunc(ctx, in)
}

func (f *FuncsToSink) PollComplete(ctx context.Context) (types.Poll[types.Unit], error) {
	if f.PollCompleteFunc == nil {
		return types.ReadyUnit(), nil
	}
	return f.PollCompleteFunc(ctx)
}

func (f *FuncsToSink) PollClose(ctx context.Context) (types.Poll[types.Unit], error) {
	if f.PollCloseFunc == nil {
		return types.ReadyUnit(), nil
	}
	return f.PollCloseFunc(ctx)
}

type FuncsToFilter struct {
	Name             string
	StartSendFunc    func(ctx context.Context, f frame.Optional) (types.SendResult[frame.Optional], error)
	PollCompleteFunc func(ctx context.Context) (types.Poll[frame.Optional], error)
}

var _ node.Filter = (*FuncsToFilter)(nil)

func (f *FuncsToFilter) String() string {
	if f.Name == "" {
		return "FuncsToFilter"
	}
	return f.Name
}

func (f *FuncsToFilter) StartSend(ctx context.Context, in frame.Optional) (types.SendResult[frame.Optional], error) {
	if f.StartSendFunc == nil {
		return types.SendResult[frame.Optional]{}, ErrNotImplemented{Func: "StartSend"}
	}
	return f.StartSendFunc(ctx, in)
}

func (f *FuncsToFilter) PollComplete(ctx context.Context) (types.Poll[frame.Optional], error) {
	if f.PollCompleteFunc == nil {
		return types.Poll[frame.Optional]{}, ErrNotImplemented{Func: "PollComplete"}
	}
	return f.PollCompleteFunc(ctx)
}

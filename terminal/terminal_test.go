package terminal_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	fmath "github.com/vadiminshakov/factorial/math"
	"github.com/vadiminshakov/factorial/terminal"
	"github.com/vadiminshakov/factorial/terminal/mocks"
)

func TestToolEvaluator(t *testing.T) {
	ev := terminal.ToolEvaluator{}

	res, err := ev.Evaluate(" 5 ")
	require.NoError(t, err)
	require.Equal(t, terminal.Result{Expr: "5!", Value: "120"}, res)

	res, err = ev.Evaluate("fact(10)/fact(8)")
	require.NoError(t, err)
	require.Equal(t, terminal.Result{Expr: "fact(10)/fact(8)", Value: "90"}, res)

	_, err = ev.Evaluate("-1")
	require.True(t, errors.Is(err, fmath.ErrInvalidArgument), "got %v", err)
}

func TestRunHeadlessWithMock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ev := mocks.NewMockEvaluator(ctrl)
	gomock.InOrder(
		ev.EXPECT().Evaluate("10").Return(terminal.Result{Expr: "10!", Value: "3628800"}, nil),
		ev.EXPECT().Evaluate("bad").Return(terminal.Result{}, errors.New("boom")),
		ev.EXPECT().Evaluate("0").Return(terminal.Result{Expr: "0!", Value: "1"}, nil),
	)

	in := strings.NewReader("10\n\n  bad \n0\nexit\n20\n")
	var out bytes.Buffer

	err := terminal.RunHeadless(context.Background(), in, &out, ev, true)
	require.NoError(t, err)
	require.Equal(t, "3,628,800\nerror: boom\n1\n", out.String())
}

func TestRunHeadlessEndToEnd(t *testing.T) {
	in := strings.NewReader("0\n1\n5\n10\n20\n-1\n3!+1\n")
	var out bytes.Buffer

	err := terminal.RunHeadless(context.Background(), in, &out, terminal.ToolEvaluator{}, false)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	require.Equal(t, []string{"1", "1", "120", "3628800", "2432902008176640000"}, lines[:5])
	require.True(t, strings.HasPrefix(lines[5], "error: "), lines[5])
	require.Contains(t, lines[5], "-1")
	require.Equal(t, "7", lines[6])
}

func TestRunHeadlessCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ev := mocks.NewMockEvaluator(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := terminal.RunHeadless(ctx, strings.NewReader("5\n"), &bytes.Buffer{}, ev, false)
	require.ErrorIs(t, err, context.Canceled)
}

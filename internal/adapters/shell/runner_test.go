package shell_test

import (
	"context"
	"testing"

	"github.com/hotpatchkit/dexopt/internal/adapters/shell"
	"github.com/hotpatchkit/dexopt/internal/core/ports/mocks"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestRunner_ForwardsOutputLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("line1").Times(1)
	mockLogger.EXPECT().Info("line2").Times(1)

	runner := shell.NewRunner(mockLogger)

	err := runner.Run(context.Background(), []string{"sh", "-c", "echo line1; echo line2"})
	require.NoError(t, err)
}

func TestRunner_StderrIsDrainedToo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("oops").Times(1)

	runner := shell.NewRunner(mockLogger)

	err := runner.Run(context.Background(), []string{"sh", "-c", "echo oops 1>&2"})
	require.NoError(t, err)
}

func TestRunner_NonZeroExitCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	runner := shell.NewRunner(mockLogger)

	err := runner.Run(context.Background(), []string{"sh", "-c", "exit 3"})
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	require.Contains(t, zErr.Error(), "command failed")
}

func TestRunner_LargeOutputDoesNotDeadlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	runner := shell.NewRunner(mockLogger)

	// Far more than a pipe buffer's worth of output on both streams.
	err := runner.Run(context.Background(), []string{
		"sh", "-c", "i=0; while [ $i -lt 20000 ]; do echo line$i; echo err$i 1>&2; i=$((i+1)); done",
	})
	require.NoError(t, err)
}

func TestRunner_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := shell.NewRunner(mocks.NewMockLogger(ctrl))

	err := runner.Run(context.Background(), nil)
	require.Error(t, err)
}

package transport

import (
	"io"
	"testing"

	"github.com/quic-go/quic-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mqoq/mqoq-go/pkg/transport/mocks"
)

func TestStreamID(t *testing.T) {
	qs := mocks.NewMockQUICStream(t)
	qs.EXPECT().StreamID().Return(quic.StreamID(8))

	assert.Equal(t, int64(8), newStream(qs, nil).ID())
}

func TestStreamReadEOF(t *testing.T) {
	qs := mocks.NewMockQUICStream(t)
	qs.EXPECT().Read(mock.Anything).Return(3, io.EOF)

	n, err := newStream(qs, nil).Read(make([]byte, 8))
	assert.Equal(t, 3, n)
	assert.Same(t, io.EOF, err)
}

func TestStreamReadReset(t *testing.T) {
	qs := mocks.NewMockQUICStream(t)
	qs.EXPECT().Read(mock.Anything).
		Return(0, &quic.StreamError{StreamID: 0, ErrorCode: 5, Remote: true})

	_, err := newStream(qs, nil).Read(make([]byte, 8))
	require.ErrorIs(t, err, ErrStreamReset)
}

func TestStreamWriteAfterPeerClose(t *testing.T) {
	qs := mocks.NewMockQUICStream(t)
	qs.EXPECT().Write([]byte("hello")).
		Return(0, &quic.ApplicationError{Remote: true})

	_, err := newStream(qs, nil).Write([]byte("hello"))
	require.ErrorIs(t, err, ErrConnectionBroken)
}

func TestStreamCloseWrite(t *testing.T) {
	qs := mocks.NewMockQUICStream(t)
	qs.EXPECT().Close().Return(nil).Once()

	require.NoError(t, newStream(qs, nil).CloseWrite())
}

func TestStreamClose(t *testing.T) {
	qs := mocks.NewMockQUICStream(t)
	qs.EXPECT().CancelRead(StreamCodeCancelled).Return().Once()
	qs.EXPECT().Close().Return(nil).Once()

	require.NoError(t, newStream(qs, nil).Close())
}

func TestStreamReset(t *testing.T) {
	qs := mocks.NewMockQUICStream(t)
	qs.EXPECT().CancelWrite(quic.StreamErrorCode(9)).Return().Once()
	qs.EXPECT().CancelRead(quic.StreamErrorCode(9)).Return().Once()

	newStream(qs, nil).Reset(9)
}

func TestStreamHalves(t *testing.T) {
	qs := mocks.NewMockQUICStream(t)
	qs.EXPECT().Write([]byte("ping")).Return(4, nil)
	qs.EXPECT().Read(mock.Anything).RunAndReturn(func(p []byte) (int, error) {
		return copy(p, "pong"), nil
	})
	qs.EXPECT().Close().Return(nil)

	s := newStream(qs, nil)

	n, err := s.Send().Write([]byte("ping"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	buf := make([]byte, 4)
	n, err = s.Recv().Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(buf[:n]))

	require.NoError(t, s.Send().Close())
}

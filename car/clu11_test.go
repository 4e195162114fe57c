package car

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateCLU11(t *testing.T) {
	frame := CreateCLU11(5, 72., ButtonResAccel)

	assert.Equal(t, CLU11FrameID, frame.ID)
	assert.Equal(t, CLU11Length, frame.Length)
	assert.Equal(t, ButtonResAccel, CLU11Button(frame))
	assert.Equal(t, uint(5), CLU11AliveCounter(frame))

	// 72 km/h at 0.5 km/h per bit
	vanz := (uint64(frame.Data[2]) | uint64(frame.Data[3])<<8) & (1<<cluVanzLen - 1)
	assert.Equal(t, uint64(144), vanz)
}

func TestCreateCLU11Bounds(t *testing.T) {
	frame := CreateCLU11(17, -3., ButtonSetDecel)

	// counter wraps into 4 bits, negative speed clamps to zero
	assert.Equal(t, uint(1), CLU11AliveCounter(frame))
	assert.Equal(t, byte(0), frame.Data[2])

	fast := CreateCLU11(0, 10000., ButtonNone)
	vanz := (uint64(fast.Data[2]) | uint64(fast.Data[3])<<8) & (1<<cluVanzLen - 1)
	assert.Equal(t, uint64(1<<cluVanzLen-1), vanz)
}

package car

import (
	"math"

	"go.einride.tech/can"
)

// CLU11 carries the cruise stalk switch state on the cluster bus. The
// emulated press must mirror the car's own frame layout or the radar unit
// rejects it.
const (
	CLU11FrameID uint32 = 0x4F1
	CLU11Length  uint8  = 4
)

// CLU11 signal layout, little endian bit order.
const (
	cluSwStateStart  = 0 // CF_Clu_CruiseSwState
	cluSwStateLen    = 3
	cluVanzStart     = 16 // CF_Clu_Vanz, 0.5 km/h per bit
	cluVanzLen       = 9
	cluAliveCntStart = 28 // CF_Clu_AliveCnt1
	cluAliveCntLen   = 4
)

func setBits(payload uint64, start uint, length uint, value uint64) uint64 {
	mask := (uint64(1)<<length - 1) << start
	return (payload &^ mask) | ((value << start) & mask)
}

// CreateCLU11 builds one synthetic stalk press frame. counter is the
// per-burst alive counter starting at 0, speed the cluster displayed speed
// in km/h echoed back the way the real stalk does.
func CreateCLU11(counter uint, speed float64, button Button) can.Frame {
	if speed < 0 {
		speed = 0
	}
	vanz := uint64(math.Round(speed * 2))
	if vanz >= 1<<cluVanzLen {
		vanz = 1<<cluVanzLen - 1
	}

	var payload uint64
	payload = setBits(payload, cluSwStateStart, cluSwStateLen, uint64(button))
	payload = setBits(payload, cluVanzStart, cluVanzLen, vanz)
	payload = setBits(payload, cluAliveCntStart, cluAliveCntLen, uint64(counter)&0xF)

	frame := can.Frame{
		ID:     CLU11FrameID,
		Length: CLU11Length,
	}
	for i := uint8(0); i < CLU11Length; i++ {
		frame.Data[i] = byte(payload >> (8 * i))
	}
	return frame
}

// CLU11Button extracts the switch state from an encoded frame.
func CLU11Button(frame can.Frame) Button {
	return Button(frame.Data[0] & (1<<cluSwStateLen - 1))
}

// CLU11AliveCounter extracts the alive counter from an encoded frame.
func CLU11AliveCounter(frame can.Frame) uint {
	return uint(frame.Data[cluAliveCntStart/8]>>(cluAliveCntStart%8)) & (1<<cluAliveCntLen - 1)
}

package image

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestViewByte(t *testing.T) {
	v := New([]byte{0x10, 0x20, 0x30})

	b, err := v.Byte(2)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x30), b)

	_, err = v.Byte(3)
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	_, err = v.Byte(-1)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestViewUint16(t *testing.T) {
	v := New([]byte{0x50, 0x01, 0xc3})

	w, err := v.Uint16(0)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x0150), w)

	w, err = v.Uint16(1)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0xc301), w)

	_, err = v.Uint16(2)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestViewSlice(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	v := New(data)

	tests := []struct {
		name    string
		offset  int
		length  int
		want    []byte
		wantErr bool
	}{
		{name: "full", offset: 0, length: 4, want: []byte{1, 2, 3, 4}},
		{name: "tail", offset: 2, length: 2, want: []byte{3, 4}},
		{name: "empty at end", offset: 4, length: 0, want: []byte{}},
		{name: "past end", offset: 3, length: 2, wantErr: true},
		{name: "negative offset", offset: -1, length: 1, wantErr: true},
		{name: "negative length", offset: 0, length: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Slice(tt.offset, tt.length)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrOutOfBounds))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestViewSliceDoesNotAliasOnAppend(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	v := New(data)

	s, err := v.Slice(0, 2)
	assert.NoError(t, err)
	_ = append(s, 0xff)
	assert.Equal(t, byte(3), data[2])
}

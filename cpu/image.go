package cpu

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"os"
)

// LoadImage reads a program image into memory. The image is a stream of
// big-endian 16-bit words; the first word is the load origin and the rest
// are stored contiguously from there. An image that would run past the
// top of memory is rejected before any word past the bound is stored.
func (m *Memory) LoadImage(r io.Reader) (origin uint16, count int, err error) {
	var word uint16

	err = binary.Read(r, binary.BigEndian, &word)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = ErrImageEmpty
		}
		return
	}
	origin = word

	addr := int(origin)
	for {
		err = binary.Read(r, binary.BigEndian, &word)
		if errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			err = errors.Join(ErrImageTruncated, err)
		}
		if err != nil {
			return
		}
		if addr >= MEMORY_SIZE {
			err = ErrImageTooLarge
			return
		}
		m.cell[addr] = word
		addr++
		count++
	}
}

// LoadImageFile loads the program image at path.
func (m *Memory) LoadImageFile(path string) (err error) {
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	_, _, err = m.LoadImage(bufio.NewReader(file))
	return
}

package strip

import (
	"fmt"
	"io"

	"github.com/clambin/blinky/internal/rgb"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// transmitter is the part of spi.Conn that Dotstar uses
type transmitter interface {
	Tx(w, r []byte) error
}

// Dotstar drives an APA102 ("DotStar") strip over SPI
type Dotstar struct {
	conn   transmitter
	closer io.Closer
	pixels []rgb.Color
	buf    []byte
}

var _ Strip = &Dotstar{}

// NewDotstar opens the SPI port (empty string selects the first available port) and returns a strip of
// numPixels pixels
func NewDotstar(port string, speed physic.Frequency, numPixels int) (*Dotstar, error) {
	if numPixels <= 0 {
		return nil, fmt.Errorf("invalid pixel count: %d", numPixels)
	}
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}
	p, err := spireg.Open(port)
	if err != nil {
		return nil, fmt.Errorf("spi open %q: %w", port, err)
	}
	c, err := p.Connect(speed, spi.Mode0, 8)
	if err != nil {
		_ = p.Close()
		return nil, fmt.Errorf("spi connect: %w", err)
	}
	log.WithFields(log.Fields{"port": port, "speed": speed, "pixels": numPixels}).Debug("dotstar strip opened")
	return newDotstar(c, p, numPixels), nil
}

func newDotstar(conn transmitter, closer io.Closer, numPixels int) *Dotstar {
	// start frame, four bytes per pixel, end frame of at least numPixels/2 clock edges
	buf := make([]byte, 4+4*numPixels+(numPixels+15)/16)
	for i := 4 + 4*numPixels; i < len(buf); i++ {
		buf[i] = 0xFF
	}
	return &Dotstar{
		conn:   conn,
		closer: closer,
		pixels: make([]rgb.Color, numPixels),
		buf:    buf,
	}
}

// NumPixels returns the number of pixels of the strip
func (d *Dotstar) NumPixels() int {
	return len(d.pixels)
}

// SetPixelColor sets the colour of the pixel. Indices outside the strip are ignored.
func (d *Dotstar) SetPixelColor(index int, c rgb.Color) {
	if index >= 0 && index < len(d.pixels) {
		d.pixels[index] = c
	}
}

// Show sends the pixels to the strip
func (d *Dotstar) Show() error {
	if d.conn == nil {
		return ErrClosed
	}
	for i, c := range d.pixels {
		offset := 4 + 4*i
		// full global brightness; dimming is done on the colour values
		d.buf[offset] = 0xE0 | 0x1F
		d.buf[offset+1] = c.B()
		d.buf[offset+2] = c.G()
		d.buf[offset+3] = c.R()
	}
	if err := d.conn.Tx(d.buf, nil); err != nil {
		return fmt.Errorf("spi: %w", err)
	}
	return nil
}

// Close releases the SPI port
func (d *Dotstar) Close() error {
	d.conn = nil
	closer := d.closer
	d.closer = nil
	if closer == nil {
		return nil
	}
	return closer.Close()
}

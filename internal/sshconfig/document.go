package sshconfig

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// HostBlock is one named entry of the SSH client configuration.
type HostBlock struct {
	Name         string `json:"name"`
	Hostname     string `json:"hostname"`
	Port         int    `json:"port"`
	User         string `json:"user"`
	IdentityFile string `json:"identityFile"`
}

// Document is the ordered set of host blocks written in one run.
type Document struct {
	Blocks []HostBlock `json:"blocks"`
}

// Lookup returns the block with the given name.
func (d *Document) Lookup(name string) (HostBlock, bool) {
	for _, b := range d.Blocks {
		if b.Name == name {
			return b, true
		}
	}
	return HostBlock{}, false
}

// Names returns block names in document order.
func (d *Document) Names() []string {
	names := make([]string, 0, len(d.Blocks))
	for _, b := range d.Blocks {
		names = append(names, b.Name)
	}
	return names
}

// WriteTo serializes the document in ssh_config format. Blocks are
// separated by a blank line; an empty document produces no output.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	for i, b := range d.Blocks {
		if i > 0 {
			_, _ = bw.WriteString("\n")
		}
		_, _ = fmt.Fprintf(bw, "Host %s\n", b.Name)
		_, _ = fmt.Fprintf(bw, "  User %s\n", b.User)
		_, _ = fmt.Fprintf(bw, "  Hostname %s\n", b.Hostname)
		_, _ = fmt.Fprintf(bw, "  Port %d\n", b.Port)
		_, _ = fmt.Fprintf(bw, "  IdentityFile %s\n", b.IdentityFile)
	}

	err := bw.Flush()
	return cw.n, err
}

// Bytes returns the serialized document.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	_, _ = d.WriteTo(&buf)
	return buf.Bytes()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

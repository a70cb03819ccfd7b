package mediahost

import "io"

type progressReader struct {
	r     io.Reader
	total int64
	read  int64
	fn    func(uploaded, total int64)
}

func newProgressReader(r io.Reader, total int64, fn func(uploaded, total int64)) *progressReader {
	return &progressReader{r: r, total: total, fn: fn}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.read += int64(n)
		p.fn(p.read, p.total)
	}
	return n, err
}

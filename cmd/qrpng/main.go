// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command qrpng writes text as a byte mode QR code.
package main

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"path"
	"strconv"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"

	"github.com/qrpng/qrpng"
)

var g = struct {
	scale   int             // scale
	border  int             // quiet zone
	palette *[2]color.Color // palette
	rev     bool            // reverse colours
	fn      string          // filename
	fext    string          // filename suffix
	lev     qr.Level        // QR correction level
	cs      qr.Charset      // text to bytes conversion
	format  int             // output file format
	cx      int             // randr source X coordinate index in inc
	inc     [2]int          // randr source X,Y coordinate increments
	bg, fg  rgba            // colour
	colSet  bool            // colour set
	all     bool            // one code per argument
	verbose bool            // debug logging
}{
	inc: [2]int{1, 1},
	bg:  rgba{0xff, 0xff, 0xff, 0xff},
	fg:  rgba{0x00, 0x00, 0x00, 0xff},
}

var logger *slog.Logger

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "QR code generator\nUsage: ", cl.Program(), " ",
		cl.UsageLine(), ` [string ...]
If no string is given, data is read from standard input and the final
newline is stripped.  With -a, each string (or input line) is a
separate code.  Defaults: level H, each UTF-16 code unit truncated to
a byte.

`)
	cl.PrintOptions(w)
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qrpng version 1.0.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2024 Vadim Vygonets`)
	os.Exit(0)
}

func flip() {
	g.inc[0] = -g.inc[0]
}

func rotate() {
	g.cx ^= 1
	m := g.inc[0] * g.inc[1]
	g.inc[0] *= m
	g.inc[1] *= -m
}

type rgba struct {
	R, G, B, A uint8
}

var colourNames = map[string]rgba{
	"black":       {0x00, 0x00, 0x00, 0xff},
	"white":       {0xff, 0xff, 0xff, 0xff},
	"transparent": {0x00, 0x00, 0x00, 0x00},
}

func (c *rgba) String() string {
	for k, v := range colourNames {
		if *c == v && k != "transparent" {
			return k
		}
	}
	if c.A == 0xff {
		return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c *rgba) Set(s string, _ getopt.Option) error {
	g.colSet = true
	var ok bool
	if *c, ok = colourNames[strings.ToLower(s)]; ok {
		return nil
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("%q: bad colour spec", s)
	}
	switch len(s) {
	case 3:
		n = n<<4 | 0xf
		fallthrough
	case 4:
		var nn uint64
		for i := 0; i < 4; i++ {
			nn <<= 8
			nn |= n >> 12 & 0xf * 0x11
			n <<= 4
		}
		n = nn
	case 6:
		n = n<<8 | 0xff
	case 8:
	default:
		return fmt.Errorf("%q: bad colour spec", s)
	}
	c.R, c.G, c.B, c.A = uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n)
	return nil
}

var formats = []string{
	"png", "pngi", "PNG", "PNGi", "pbm", "pbmi", "svg", "svgi",
	"pdf", "pdfi", "eps", "epsi", "utf8", "utf8i", "ascii", "asciii",
}

var encoders = [...]func(*qr.Code, io.Writer) error{
	(*qr.Code).EncodePNG,
	func(c *qr.Code, w io.Writer) error { return png.Encode(w, c.Image()) },
	(*qr.Code).EncodePBM,
	(*qr.Code).EncodeSVG,
	(*qr.Code).EncodePDF,
	eps,
	func(c *qr.Code, w io.Writer) error {
		_, err := fmt.Fprint(w, c)
		return err
	},
	ascii,
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.FlagLong(&g.bg, "background", 'B', `background colour; see -F`,
		"RGB[A]|name")
	getopt.FlagLong(&g.fg, "foreground", 'F', `foreground colour `+
		`as 3, 4, 6 or 8 hex digits, "black", "white" or `+
		`"transparent"; not for types utf8[i], ascii[i] and pbm[i]`,
		"RGB[A]|name")
	getopt.Flag(opt(flip), 'f', `flip code horizontally; `+
		`to flip vertically, use "-frr"`).SetFlag()
	getopt.Flag(opt(rotate), 'r', `rotate code 90° counterclockwise; `+
		`-r and -f may be given multiple times, `+
		`order matters: "-fr" = "-rfrr" = "-rrrf"`).SetFlag()
	getopt.Flag(&g.all, 'a', `encode each string or input line as a `+
		`separate code, in parallel; with -o, "-01", "-02" etc. is `+
		`appended to the filename before suffix`)
	getopt.Flag(&g.verbose, 'v', "log code parameters to standard error")
	border := getopt.Unsigned('m', qr.DefaultBorder,
		&getopt.UnsignedLimit{0, 16, 0, 1024}, "quiet zone modules",
		"margin")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "h",
		"error correction level, lowest to highest", "l|m|q|h")
	cs := getopt.Enum('c', qr.Charsets(), qr.UTF16.String(),
		`text to bytes conversion: "utf16" keeps the low byte of `+
			`each UTF-16 code unit, "utf8" is unconverted, `+
			`"latin1" rejects characters outside ISO 8859-1`,
		strings.Join(qr.Charsets(), "|"))
	scale := getopt.Unsigned('s', qr.DefaultScale,
		&getopt.UnsignedLimit{0, 28, 1, 1 << 16},
		`image pixels (types pdf[i], svg[i] and eps[i]: points) per `+
			`QR module; ignored for types utf8[i] and ascii[i]`, "scale")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`"png" uses a bespoke 1-bit PNG encoder, `+
		`"PNG" uses the standard Go encoder; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	g.scale = int(*scale)
	g.border = int(*border)
	g.lev = qr.Level(strings.Index("lmqhLMQH", *lev) & 3)
	var err error
	if g.cs, err = qr.ParseCharset(*cs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
	}
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	for i, v := range formats {
		if *ff == v {
			g.format = i >> 1
			g.rev = i&1 != 0
			break
		}
	}
	if g.fn == "-" {
		g.fn = ""
	}
	if g.colSet {
		g.palette = &[2]color.Color{color.RGBA(g.bg), color.RGBA(g.fg)}
	}
	level := slog.LevelWarn
	if g.verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr,
		&slog.HandlerOptions{Level: level}))
}

func main() {
	log.SetFlags(0)
	parseFlags()

	texts := getopt.Args()
	if len(texts) == 0 {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s := strings.TrimSuffix(b.String(), "\n")
		if g.all {
			texts = strings.Split(s, "\n")
		} else {
			texts = []string{s}
		}
	} else if !g.all {
		texts = []string{strings.Join(texts, " ")}
	}

	if !g.all {
		c, err := qr.EncodeCharset(texts[0], g.cs, g.lev)
		if err != nil {
			log.Fatalln(err)
		}
		write(-1, c)
		return
	}

	g.fext = path.Ext(g.fn)
	g.fn = g.fn[:len(g.fn)-len(g.fext)]
	cc, err := qr.EncodeAll(context.Background(), texts, g.cs, g.lev)
	if err != nil {
		log.Fatalln(err)
	}
	for i, c := range cc {
		write(i, c)
	}
}

// A countWriter counts bytes written to w.
type countWriter struct {
	w io.Writer
	n int64
}

func (w *countWriter) Write(b []byte) (int, error) {
	n, err := w.w.Write(b)
	w.n += int64(n)
	return n, err
}

func write(i int, c *qr.Code) {
	fn := g.fn
	open := fn != "" || g.fext != ""
	var w = os.Stdout
	if open {
		if i >= 0 {
			fn = fmt.Sprintf("%s-%02d%s", fn, i+1, g.fext)
		}
		var err error
		if w, err = os.OpenFile(fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatalln(err)
		}
	}
	logger.Debug("encoded", "code", i+1, "version", c.Version,
		"size", c.Size, "level", c.Level, "mask", c.Mask,
		"penalties", c.Penalties)
	c = randr(c)
	c.Scale = g.scale
	c.Border = g.border
	c.Palette = g.palette
	c.Reverse = g.rev
	cw := &countWriter{w: w}
	err := encoders[g.format](c, cw)
	if open && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
	name := fn
	if !open {
		name = "-"
	}
	logger.Debug("wrote", "file", name, "type", formats[g.format*2],
		"bytes", cw.n)
}

// randr rotates and reflects c.  The size of a QR code is odd, so
// (siz-1)&inc is 0 for inc 1 and siz-1 for inc -1.
func randr(c *qr.Code) *qr.Code {
	cx, inc := g.cx, g.inc
	if cx == 0 && inc == [2]int{1, 1} {
		return c
	}
	siz := c.Size
	stride := (siz + 7) / 8
	b := make([]byte, 0, stride*siz)
	var coord [2]int
	coord[cx^1] = (siz - 1) & inc[1]
	for y := 0; y < siz; y++ {
		coord[cx] = (siz - 1) & inc[0]
		var bb byte
		for x := 0; x < siz; x++ {
			bb <<= 1
			if c.Black(coord[0], coord[1]) {
				bb |= 1
			}
			if x&7 == 7 {
				b = append(b, bb)
			}
			coord[cx] += inc[0]
		}
		if siz&7 != 0 {
			b = append(b, bb<<(8-siz&7))
		}
		coord[cx^1] += inc[1]
	}
	c.Bitmap = b
	c.Stride = stride
	return c
}

func eps(c *qr.Code, w io.Writer) error {
	const midx, midy = 306, 396
	siz := c.Size
	scale := c.Scale
	bord := c.Border
	xorig := (midx*2 - (siz+2*bord)*scale) / 2
	yorig := (midy*2 - (siz+2*bord)*scale) / 2
	var b bytes.Buffer
	fmt.Fprintf(&b, `%%!PS-Adobe-2.0 EPSF-2.0
%%%%Creator: qrpng
%%%%Title: QR Code
%%%%BoundingBox: %d %d %d %d
%%%%EndComments
%%%%EndProlog
<< >> begin
gsave
%g %g translate
%d dup neg scale
/row 0 def
/p { 0 rmoveto 0 rlineto } def
/r { 0 row 1 add dup /row exch def moveto } def
`,
		xorig-1, yorig-1, midx*2-xorig, midy*2-yorig,
		midx-float64(siz*scale)/2, midy+float64((siz-1)*scale)/2-1,
		scale)
	if rev := c.Reverse; rev || g.colSet {
		bg, fg := g.bg, g.fg
		if rev {
			bg, fg = fg, bg
		}
		fmt.Fprintf(&b, `gsave
newpath %d %d moveto
%d dup neg scale
%.3g %.3g %.3g setrgbcolor
1 0 rlineto stroke
grestore
%.3g %.3g %.3g setrgbcolor
`,
			-bord, siz/2, siz+2*bord,
			float64(bg.R)/0xff, float64(bg.G)/0xff,
			float64(bg.B)/0xff, float64(fg.R)/0xff,
			float64(fg.G)/0xff, float64(fg.B)/0xff)
	}
	fmt.Fprintln(&b, "newpath 0 0 moveto")
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; {
			s := x
			for x < siz && !c.Black(x, y) {
				x++
			}
			if x == siz {
				break
			}
			start := x
			for x < siz && c.Black(x, y) {
				x++
			}
			fmt.Fprintf(&b, "%d %d p ", x-start, start-s)
		}
		fmt.Fprintln(&b, "r")
	}
	fmt.Fprintln(&b, "stroke grestore\nend\n%%Trailer")
	_, err := w.Write(b.Bytes())
	return err
}

func ascii(c *qr.Code, w io.Writer) error {
	siz := c.Size
	bord := c.Border
	pix := siz + 2*bord
	b := make([]byte, (pix*2+1)*pix)
	i := 0
	for y := -bord; y < siz+bord; y++ {
		for x := -bord; x < siz+bord; x++ {
			var p byte = ' '
			if c.Black(x, y) != c.Reverse {
				p = '#'
			}
			b[i], b[i+1] = p, p
			i += 2
		}
		b[i] = '\n'
		i++
	}
	_, err := w.Write(b)
	return err
}

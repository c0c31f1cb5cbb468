// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"io"

	"github.com/signintech/gopdf"
)

// EncodePDF writes a single page PDF document displaying the code to
// w.  The page is c.Scale points per module, quiet zone included.
func (c *Code) EncodePDF(w io.Writer) error {
	if w == nil || !c.isValid() {
		return ErrArgs
	}
	pix := c.Scale * (c.Size + 2*c.Border)
	if pix > maxPixels {
		return ErrLargeImage
	}
	rect := gopdf.Rect{W: float64(pix), H: float64(pix)}
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{Unit: gopdf.UnitPT, PageSize: rect})
	pdf.AddPage()
	if err := pdf.ImageFrom(c.Image(), 0, 0, &rect); err != nil {
		return err
	}
	return pdf.Write(w)
}

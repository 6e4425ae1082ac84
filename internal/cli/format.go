package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/flooring/internal/model"
)

const displayDate = "01/02/2006"

var printer = message.NewPrinter(language.AmericanEnglish)

// currency renders d as US dollars rounded to cents, e.g. $1,051.88.
func currency(d decimal.Decimal) string {
	r := d.Round(2)
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Abs()
	}
	fixed := r.StringFixed(2)
	cents := fixed[strings.IndexByte(fixed, '.'):]
	return sign + "$" + printer.Sprintf("%d", r.IntPart()) + cents
}

// writeOrder prints one order block.
func writeOrder(w io.Writer, o model.Order, date time.Time) {
	fmt.Fprintf(w, "ORDER #%d | DATE: %s\n", o.OrderNumber, date.Format(displayDate))
	fmt.Fprintf(w, "\t%s\n", o.CustomerName)
	fmt.Fprintf(w, "\t%s\n", o.Tax.State)
	fmt.Fprintf(w, "\tProduct: %s\n", o.Product.ProductType)
	fmt.Fprintf(w, "\tArea: %s\n", o.Area.String())
	fmt.Fprintf(w, "\tMaterials: %s\n", currency(o.MaterialCost))
	fmt.Fprintf(w, "\tLabor: %s\n", currency(o.LaborCost))
	fmt.Fprintf(w, "\tTax: %s\n", currency(o.TaxAmount))
	fmt.Fprintf(w, "\tTotal: %s\n", currency(o.Total))
	fmt.Fprintln(w)
}

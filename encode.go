package clearing

import (
	"encoding/csv"
	"io"
	"strconv"
)

// This file encodes the output format: one CSV row per account snapshot.
// The frozen field is serialized under the historical column name "locked".

// EncodeSnapshots writes the account views as CSV to w, one row per
// account, all amounts with exactly 4 fractional digits.
func EncodeSnapshots(w io.Writer, views []AccountView) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}
	for _, v := range views {
		record := []string{
			strconv.FormatUint(uint64(v.Client), 10),
			v.Available.String(),
			v.Held.String(),
			v.Total.String(),
			strconv.FormatBool(v.Frozen),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

package config

import (
	"strconv"

	"github.com/pkg/errors"
)

type float float64

var _ customType = (*float)(nil)

func (f *float) Marshal() string {
	return strconv.FormatFloat(float64(*f), 'g', -1, 64)
}

func (f *float) Unmarshal(v string) error {
	p, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return errors.Wrap(err, "invalid number")
	}

	*f = float(p)
	return nil
}

func cloneCustom(v customType) customType {
	switch v := v.(type) {
	case *float:
		cpy := *v
		return &cpy
	default:
		return v
	}
}

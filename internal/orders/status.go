package orders

import "errors"

type Method string

const (
	MethodDana  Method = "DANA"
	MethodGopay Method = "GOPAY"
)

var ErrUnknownMethod = errors.New("unknown payment method")

func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodDana, MethodGopay:
		return Method(s), nil
	}
	return "", ErrUnknownMethod
}

package server

import (
	"html/template"
	"strconv"
)

var templateFuncs = template.FuncMap{
	"spotsLeft": spotsLeft,
}

func spotsLeft(n int) string {
	return strconv.Itoa(n) + " spots left"
}

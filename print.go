package tknormalizer

import (
	"github.com/fatih/color"
)

// PrintResult pretty-prints the fields of a Result
func PrintResult(res *Result) {
	var leftAttrsFilled = []color.Attribute{color.FgHiYellow, color.Bold}
	var leftAttrsBlank = []color.Attribute{color.FgHiBlack}
	var rightAttrs = []color.Attribute{color.FgHiWhite}

	for _, name := range res.Fields() {
		value, _ := res.Field(name)
		if len(value) != 0 {
			color.New(leftAttrsFilled...).Printf("%26s: ", name)
		} else {
			color.New(leftAttrsBlank...).Printf("%26s: ", name)
		}
		color.New(rightAttrs...).Println(value)
	}

	color.New().Println("")
}

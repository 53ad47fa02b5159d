package cnpj_test

import (
	"fmt"

	"github.com/gyeh/cnpjload/pkg/cnpj"
)

func ExampleValidate() {
	r := cnpj.Validate("12.abc.345/01de-35", cnpj.RejectEmpty())
	fmt.Println(r.Valid, r.Value, r.Scheme)

	r = cnpj.Validate("11.222.333/0001-81", cnpj.Formatted())
	fmt.Println(r.Valid, r.Value, r.Scheme)
	// Output:
	// true 12ABC34501DE35 alphanumeric
	// true 11.222.333/0001-81 numeric
}

func ExampleFormat() {
	fmt.Println(cnpj.Format("035298000121"))
	fmt.Println(cnpj.Compact("27.035.298/0001-21"))
	// Output:
	// 00.035.298/0001-21
	// 27035298000121
}

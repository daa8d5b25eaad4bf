package creole_test

import (
	"fmt"

	"github.com/alnah/go-creole"
)

func ExampleConvert() {
	result := creole.Convert("= Welcome\n\nHello, **World**!")
	fmt.Print(result.HTML)
	// Output:
	// <h1>Welcome</h1>
	// <p>Hello, <strong>World</strong>!</p>
}

func ExampleParser_ParseString() {
	p := creole.New(creole.WithResolverFunc(func(uri string) string {
		return "/wiki/" + uri
	}))
	result := p.ParseString("See [[HomePage|the home page]].")
	fmt.Print(result.HTML)
	// Output:
	// <p>See <a href="/wiki/HomePage">the home page</a>.</p>
}

func ExampleWithXHTML() {
	result := creole.Convert(`First\\second`, creole.WithXHTML())
	fmt.Print(result.HTML)
	// Output:
	// <p>First<br/>second</p>
}

func ExampleResult() {
	result := creole.Convert("== Getting Started ==\n\nRead this first.")
	fmt.Println(result.Heading)
	// Output:
	// Getting Started
}

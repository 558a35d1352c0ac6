package llll_test

import (
	"fmt"
	"strings"

	"github.com/kana/go-llll"
)

type language struct {
	Name string
	Year int
}

// Example demonstrates a query over a small in-memory dataset: filter,
// order with a tie-break, project, and group. Nothing runs until a
// terminal operation pulls the chain.
func Example() {
	languages := llll.Of(
		language{"ada", 1983},
		language{"awk", 1977},
		language{"bash", 1989},
		language{"bcpl", 1967},
		language{"c", 1972},
		language{"cobol", 1959},
	)

	modern := llll.Where(languages, func(l language) bool { return l.Year >= 1970 })

	sorted := llll.ThenBy(
		llll.OrderBy(modern, func(l language) int { return len(l.Name) }),
		func(l language) string { return l.Name },
	).Query()

	names := llll.Select(sorted, func(l language) string { return l.Name })
	fmt.Println(strings.Join(llll.ToSlice(names), " "))

	byInitial := llll.ToLookup(names, func(s string) byte { return s[0] })
	for _, k := range byInitial.Keys() {
		fmt.Printf("%c: %v\n", k, llll.ToSlice(byInitial.Get(k)))
	}

	// Output:
	// c ada awk bash
	// c: [c]
	// a: [ada awk]
	// b: [bash]
}

func ExampleWhere() {
	q := llll.Where(llll.Range(0, 10), func(x int) bool { return x%2 == 0 })
	fmt.Println(llll.ToSlice(q))
	// Output: [0 2 4 6 8]
}

func ExampleThenBy() {
	o := llll.OrderBy(llll.Range(0, 10), func(x int) int { return x % 2 })
	q := llll.ThenBy(o, func(x int) int { return -x }).Query()
	fmt.Println(llll.ToSlice(q))
	// Output: [8 6 4 2 0 9 7 5 3 1]
}

func ExampleFirstOrDefault() {
	big := func(x int) bool { return x > 10 }
	fmt.Println(llll.FirstOrDefault(llll.Of(3, 14, 15), -1, big))
	fmt.Println(llll.FirstOrDefault(llll.Of(3, 1, 4), -1, big))
	// Output:
	// 14
	// -1
}

func ExampleBind() {
	shout := llll.Bind(llll.Select[string, string], strings.ToUpper)

	fmt.Println(llll.ToSlice(shout.Apply(llll.Of("ada", "c"))))
	fmt.Println(llll.ToSlice(shout.Apply(llll.Of("awk"))))
	// Output:
	// [ADA C]
	// [AWK]
}

func ExampleRepeatForever() {
	q := llll.Take(llll.RepeatForever(7), 3)
	fmt.Println(llll.ToSlice(q))
	// Output: [7 7 7]
}

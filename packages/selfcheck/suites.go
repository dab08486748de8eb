package selfcheck

import (
	"strings"

	"github.com/abdul-hamid-achik/testy/packages/assertions"
	"github.com/abdul-hamid-achik/testy/packages/core/runner"
)

const same = "same string"

// fresh returns a copy of s with its own storage.
func fresh(s string) string {
	return strings.Clone(s)
}

func pass() error {
	// Doing nothing passes
	return nil
}

func fail1() error {
	return assertions.Fail("Fail 1")
}

// failingCases holds 50 cases, each of which fails, the last without a message.
func failingCases() []runner.Case {
	same2 := same
	return []runner.Case{
		named("fail", fail1),
		named("assertTrue", func() error { return assertions.True(false, "assertTrue") }),
		named("assertFalse", func() error { return assertions.False(true, "assertFalse") }),
		named("assertEquals", func() error { return assertions.Equals("two", fresh("one"), "assertEquals") }),
		named("assertNotEquals", func() error { return assertions.NotEquals("one", fresh("one"), "assertNotEquals") }),
		named("assertSame", func() error { return assertions.Same(same, fresh(same), "assertSame") }),
		named("assertNotSame", func() error { return assertions.NotSame(same, same2, "assertNotSame") }),
		named("assertNull", func() error { return assertions.Null("not null", "assertNull") }),
		named("assertNotNull", func() error { return assertions.NotNull(nil, "assertNotNull") }),
		named("assertEquals boolean", func() error { return assertions.Equals(true, false, "assertEquals boolean") }),
		named("assertNotEquals boolean", func() error { return assertions.NotEquals(true, true, "assertNotEquals boolean") }),
		named("assertEquals boolean[]", func() error {
			return assertions.Equals([]bool{true, false}, []bool{true, true}, "assertEquals boolean[]")
		}),
		named("assertNotEquals boolean[]", func() error {
			return assertions.NotEquals([]bool{true, true}, []bool{true, true}, "assertNotEquals boolean[]")
		}),

		named("assertEquals byte", func() error { return assertions.Equals(byte(1), byte(2), "assertEquals byte") }),
		named("assertNotEquals byte", func() error { return assertions.NotEquals(byte(1), byte(1), "assertNotEquals byte") }),
		named("assertEquals byte[]", func() error {
			return assertions.Equals([]byte{1, 1}, []byte{1, 0}, "assertEquals byte[]")
		}),
		named("assertNotEquals byte[]", func() error {
			return assertions.NotEquals([]byte{1, 1}, []byte{1, 1}, "assertNotEquals byte[]")
		}),

		named("assertNotEquals char", func() error { return assertions.NotEquals('a', 'a', "assertNotEquals char") }),
		named("assertEquals char", func() error { return assertions.Equals('a', 'b', "assertEquals char") }),
		named("assertNotEquals char[]", func() error {
			return assertions.NotEquals([]rune{'a', 'a'}, []rune{'a', 'a'}, "assertNotEquals char[]")
		}),
		named("assertEquals char[]", func() error {
			return assertions.Equals([]rune{'a', 'a'}, []rune{'a', 'b'}, "assertEquals char[]")
		}),

		named("assertNotEquals int", func() error { return assertions.NotEquals(1, 1, "assertNotEquals int") }),
		named("assertEquals int", func() error { return assertions.Equals(1, 0, "assertEquals int") }),
		named("assertNotEquals int[]", func() error {
			return assertions.NotEquals([]int{1, 1}, []int{1, 1}, "assertNotEquals int[]")
		}),
		named("assertEquals int[]", func() error {
			return assertions.Equals([]int{1, 1}, []int{1, 0}, "assertEquals int[]")
		}),

		named("assertNotEquals long", func() error { return assertions.NotEquals(int64(1), int64(1), "assertNotEquals long") }),
		named("assertEquals long", func() error { return assertions.Equals(int64(1), int64(0), "assertEquals long") }),
		named("assertNotEquals long[]", func() error {
			return assertions.NotEquals([]int64{1, 1}, []int64{1, 1}, "assertNotEquals long[]")
		}),
		named("assertEquals long[]", func() error {
			return assertions.Equals([]int64{1, 1}, []int64{1, 0}, "assertEquals long[]")
		}),

		named("assertNotEquals double", func() error {
			return assertions.NotEqualsWithin(1.3, 1.301, 0.01, "assertNotEquals double")
		}),
		named("assertEquals double", func() error {
			return assertions.EqualsWithin(1.3, 1.4, 0.01, "assertEquals double")
		}),
		named("assertNotEquals double[]", func() error {
			return assertions.NotEqualsWithin([]float64{1.3, 1.3}, []float64{1.3, 1.3}, 0.01, "assertNotEquals double[]")
		}),
		named("assertEquals double[]", func() error {
			return assertions.EqualsWithin([]float64{1.3, 1.3}, []float64{1.3, 1.5}, 0.01, "assertEquals double[]")
		}),
		named("assertNotEquals double[][]", func() error {
			return assertions.NotEqualsWithin([][]float64{{1.3, 1.3}}, [][]float64{{1.3, 1.3}}, 0.01, "assertNotEquals double[][]")
		}),
		named("assertEquals double[][]", func() error {
			return assertions.EqualsWithin([][]float64{{1.3, 1.3}}, [][]float64{{1.3, 1.5}}, 0.01, "assertEquals double[][]")
		}),
		named("assertNotEquals double[][][]", func() error {
			return assertions.NotEqualsWithin([][][]float64{{{1.3, 1.3}}}, [][][]float64{{{1.3, 1.3}}}, 0.01, "assertNotEquals double[][][]")
		}),
		named("assertEquals double[][][]", func() error {
			return assertions.EqualsWithin([][][]float64{{{1.3, 1.3}}}, [][][]float64{{{1.3, 1.5}}}, 0.01, "assertEquals double[][][]")
		}),
		named("assertNotEquals double[][][][]", func() error {
			return assertions.NotEqualsWithin([][][][]float64{{{{1.3, 1.3}}}}, [][][][]float64{{{{1.3, 1.3}}}}, 0.01, "assertNotEquals double[][][][]")
		}),
		named("assertEquals double[][][][]", func() error {
			return assertions.EqualsWithin([][][][]float64{{{{1.3, 1.3}}}}, [][][][]float64{{{{1.3, 1.5}}}}, 0.01, "assertEquals double[][][][]")
		}),

		named("assertNotEquals float", func() error {
			return assertions.NotEqualsWithin(float32(1.3), float32(1.301), 0.01, "assertNotEquals float")
		}),
		named("assertEquals float", func() error {
			return assertions.EqualsWithin(float32(1.3), 1.4, 0.01, "assertEquals float")
		}),
		named("assertNotEquals float[]", func() error {
			return assertions.NotEqualsWithin([]float32{1.3, 1.3}, []float32{1.3, 1.3}, 0.01, "assertNotEquals float[]")
		}),
		named("assertEquals float[]", func() error {
			return assertions.EqualsWithin([]float32{1.3, 1.3}, []float32{1.3, 1.5}, 0.01, "assertEquals float[]")
		}),
		named("assertNotEquals float[][]", func() error {
			return assertions.NotEqualsWithin([][]float32{{1.3, 1.3}}, [][]float32{{1.3, 1.3}}, 0.01, "assertNotEquals float[][]")
		}),
		named("assertEquals float[][]", func() error {
			return assertions.EqualsWithin([][]float32{{1.3, 1.3}}, [][]float32{{1.3, 1.5}}, 0.01, "assertEquals float[][]")
		}),
		named("assertNotEquals float[][][]", func() error {
			return assertions.NotEqualsWithin([][][]float32{{{1.3, 1.3}}}, [][][]float32{{{1.3, 1.3}}}, 0.01, "assertNotEquals float[][][]")
		}),
		named("assertEquals float[][][]", func() error {
			return assertions.EqualsWithin([][][]float32{{{1.3, 1.3}}}, [][][]float32{{{1.3, 1.5}}}, 0.01, "assertEquals float[][][]")
		}),
		named("assertNotEquals float[][][][]", func() error {
			return assertions.NotEqualsWithin([][][][]float32{{{{1.3, 1.3}}}}, [][][][]float32{{{{1.3, 1.3}}}}, 0.01, "assertNotEquals float[][][][]")
		}),
		named("assertEquals float[][][][]", func() error {
			return assertions.EqualsWithin([][][][]float32{{{{1.3, 1.3}}}}, [][][][]float32{{{{1.3, 1.5}}}}, 0.01, "assertEquals float[][][][]")
		}),

		named("assertEquals int[][]", func() error {
			return assertions.Equals([][]int{{1, 2}}, [][]int{{3, 4}})
		}),
	}
}

// messagelessCases holds passing cases that never give a message.
func messagelessCases() []runner.Case {
	return []runner.Case{
		named("pass", pass),
		named("true", func() error { return assertions.True(true) }),
		named("false", func() error { return assertions.False(false) }),
		named("equals string", func() error { return assertions.Equals("one", fresh("one")) }),
		named("not equals string", func() error { return assertions.NotEquals("one", fresh("two")) }),
		named("same", func() error { return assertions.Same(same, same) }),
		named("not same", func() error { return assertions.NotSame("one", fresh("one")) }),
		named("null", func() error { return assertions.Null(nil) }),
		named("not null", func() error { return assertions.NotNull("not null") }),
		named("equals boolean", func() error { return assertions.Equals(true, true) }),
		named("not equals boolean", func() error { return assertions.NotEquals(true, false) }),
		named("equals boolean[]", func() error { return assertions.Equals([]bool{true, true}, []bool{true, true}) }),
		named("not equals boolean[]", func() error { return assertions.NotEquals([]bool{true, true}, []bool{true, false}) }),

		named("equals byte", func() error { return assertions.Equals(byte(1), byte(1)) }),
		named("not equals byte", func() error { return assertions.NotEquals(byte(1), byte(0)) }),
		named("equals byte[]", func() error { return assertions.Equals([]byte{1, 1}, []byte{1, 1}) }),
		named("not equals byte[]", func() error { return assertions.NotEquals([]byte{1, 1}, []byte{1, 0}) }),

		named("equals char", func() error { return assertions.Equals('a', 'a') }),
		named("not equals char", func() error { return assertions.NotEquals('a', 'b') }),
		named("equals char[]", func() error { return assertions.Equals([]rune{'a', 'a'}, []rune{'a', 'a'}) }),
		named("not equals char[]", func() error { return assertions.NotEquals([]rune{'a', 'a'}, []rune{'a', 'b'}) }),

		named("equals int", func() error { return assertions.Equals(1, 1) }),
		named("not equals int", func() error { return assertions.NotEquals(1, 0) }),
		named("equals int[]", func() error { return assertions.Equals([]int{1, 1}, []int{1, 1}) }),
		named("not equals int[]", func() error { return assertions.NotEquals([]int{1, 1}, []int{1, 0}) }),

		named("equals long", func() error { return assertions.Equals(int64(1), int64(1)) }),
		named("not equals long", func() error { return assertions.NotEquals(int64(1), int64(0)) }),
		named("equals long[]", func() error { return assertions.Equals([]int64{1, 1}, []int64{1, 1}) }),
		named("not equals long[]", func() error { return assertions.NotEquals([]int64{1, 1}, []int64{1, 0}) }),

		named("equals double", func() error { return assertions.EqualsWithin(1.3, 1.301, 0.01) }),
		named("not equals double", func() error { return assertions.NotEqualsWithin(1.3, 1.4, 0.01) }),
		named("equals double[]", func() error {
			return assertions.EqualsWithin([]float64{1.3, 1.3}, []float64{1.3, 1.3}, 0.01)
		}),
		named("not equals double[]", func() error {
			return assertions.NotEqualsWithin([]float64{1.3, 1.3}, []float64{1.3, 1.5}, 0.01)
		}),
		named("equals double[][]", func() error {
			return assertions.EqualsWithin([][]float64{{1.3, 1.3}}, [][]float64{{1.3, 1.3}}, 0.01)
		}),
		named("not equals double[][]", func() error {
			return assertions.NotEqualsWithin([][]float64{{1.3, 1.3}}, [][]float64{{1.3, 1.5}}, 0.01)
		}),
		named("equals double[][][]", func() error {
			return assertions.EqualsWithin([][][]float64{{{1.3, 1.3}}}, [][][]float64{{{1.3, 1.3}}}, 0.01)
		}),
		named("not equals double[][][]", func() error {
			return assertions.NotEqualsWithin([][][]float64{{{1.3, 1.3}}}, [][][]float64{{{1.3, 1.5}}}, 0.01)
		}),
		named("equals double[][][][]", func() error {
			return assertions.EqualsWithin([][][][]float64{{{{1.3, 1.3}}}}, [][][][]float64{{{{1.3, 1.3}}}}, 0.01)
		}),
		named("not equals double[][][][]", func() error {
			return assertions.NotEqualsWithin([][][][]float64{{{{1.3, 1.3}}}}, [][][][]float64{{{{1.3, 1.5}}}}, 0.01)
		}),

		named("equals float", func() error { return assertions.EqualsWithin(float32(1.3), float32(1.301), 0.01) }),
		named("not equals float", func() error { return assertions.NotEqualsWithin(float32(1.3), 1.4, 0.01) }),
		named("equals float[]", func() error {
			return assertions.EqualsWithin([]float32{1.3, 1.3}, []float32{1.3, 1.3}, 0.01)
		}),
		named("not equals float[]", func() error {
			return assertions.NotEqualsWithin([]float32{1.3, 1.3}, []float32{1.3, 1.5}, 0.01)
		}),
		named("equals float[][]", func() error {
			return assertions.EqualsWithin([][]float32{{1.3, 1.3}}, [][]float32{{1.3, 1.3}}, 0.01)
		}),
		named("not equals float[][]", func() error {
			return assertions.NotEqualsWithin([][]float32{{1.3, 1.3}}, [][]float32{{1.3, 1.5}}, 0.01)
		}),
		named("equals float[][][]", func() error {
			return assertions.EqualsWithin([][][]float32{{{1.3, 1.3}}}, [][][]float32{{{1.3, 1.3}}}, 0.01)
		}),
		named("not equals float[][][]", func() error {
			return assertions.NotEqualsWithin([][][]float32{{{1.3, 1.3}}}, [][][]float32{{{1.3, 1.5}}}, 0.01)
		}),
		named("equals float[][][][]", func() error {
			return assertions.EqualsWithin([][][][]float32{{{{1.3, 1.3}}}}, [][][][]float32{{{{1.3, 1.3}}}}, 0.01)
		}),
		named("not equals float[][][][]", func() error {
			return assertions.NotEqualsWithin([][][][]float32{{{{1.3, 1.3}}}}, [][][][]float32{{{{1.3, 1.5}}}}, 0.01)
		}),
	}
}

// passingCases mirrors messagelessCases with a message on every check.
func passingCases() []runner.Case {
	return []runner.Case{
		named("pass", pass),
		named("assertTrue", func() error { return assertions.True(true, "assertTrue") }),
		named("assertFalse", func() error { return assertions.False(false, "assertFalse") }),
		named("assertEquals", func() error { return assertions.Equals("one", fresh("one"), "assertEquals") }),
		named("assertNotEquals", func() error { return assertions.NotEquals("one", fresh("two"), "assertNotEquals") }),
		named("assertSame", func() error { return assertions.Same(same, same, "assertSame") }),
		named("assertNotSame", func() error { return assertions.NotSame("one", fresh("one"), "assertNotSame") }),
		named("assertNull", func() error { return assertions.Null(nil, "assertNull") }),
		named("assertNotNull", func() error { return assertions.NotNull("not null", "assertNotNull") }),
		named("assertEquals boolean", func() error { return assertions.Equals(true, true, "assertEquals boolean") }),
		named("assertNotEquals boolean", func() error { return assertions.NotEquals(true, false, "assertNotEquals boolean") }),
		named("assertEquals boolean[]", func() error {
			return assertions.Equals([]bool{true, true}, []bool{true, true}, "assertEquals boolean[]")
		}),
		named("assertNotEquals boolean[]", func() error {
			return assertions.NotEquals([]bool{true, true}, []bool{true, false}, "assertNotEquals boolean[]")
		}),

		named("assertEquals byte", func() error { return assertions.Equals(byte(1), byte(1), "assertEquals byte") }),
		named("assertNotEquals byte", func() error { return assertions.NotEquals(byte(1), byte(0), "assertNotEquals byte") }),
		named("assertEquals byte[]", func() error {
			return assertions.Equals([]byte{1, 1}, []byte{1, 1}, "assertEquals byte[]")
		}),
		named("assertNotEquals byte[]", func() error {
			return assertions.NotEquals([]byte{1, 1}, []byte{1, 0}, "assertNotEquals byte[]")
		}),

		named("assertEquals char", func() error { return assertions.Equals('a', 'a', "assertEquals char") }),
		named("assertNotEquals char", func() error { return assertions.NotEquals('a', 'b', "assertNotEquals char") }),
		named("assertEquals char[]", func() error {
			return assertions.Equals([]rune{'a', 'a'}, []rune{'a', 'a'}, "assertEquals char[]")
		}),
		named("assertNotEquals char[]", func() error {
			return assertions.NotEquals([]rune{'a', 'a'}, []rune{'a', 'b'}, "assertNotEquals char[]")
		}),

		named("assertEquals int", func() error { return assertions.Equals(1, 1, "assertEquals int") }),
		named("assertNotEquals int", func() error { return assertions.NotEquals(1, 0, "assertNotEquals int") }),
		named("assertEquals int[]", func() error {
			return assertions.Equals([]int{1, 1}, []int{1, 1}, "assertEquals int[]")
		}),
		named("assertNotEquals int[]", func() error {
			return assertions.NotEquals([]int{1, 1}, []int{1, 0}, "assertNotEquals int[]")
		}),

		named("assertEquals long", func() error { return assertions.Equals(int64(1), int64(1), "assertEquals long") }),
		named("assertNotEquals long", func() error { return assertions.NotEquals(int64(1), int64(0), "assertNotEquals long") }),
		named("assertEquals long[]", func() error {
			return assertions.Equals([]int64{1, 1}, []int64{1, 1}, "assertEquals long[]")
		}),
		named("assertNotEquals long[]", func() error {
			return assertions.NotEquals([]int64{1, 1}, []int64{1, 0}, "assertNotEquals long[]")
		}),

		named("assertEquals double", func() error {
			return assertions.EqualsWithin(1.3, 1.301, 0.01, "assertEquals double")
		}),
		named("assertNotEquals double", func() error {
			return assertions.NotEqualsWithin(1.3, 1.4, 0.01, "assertNotEquals double")
		}),
		named("assertEquals double[]", func() error {
			return assertions.EqualsWithin([]float64{1.3, 1.3}, []float64{1.3, 1.3}, 0.01, "assertEquals double[]")
		}),
		named("assertNotEquals double[]", func() error {
			return assertions.NotEqualsWithin([]float64{1.3, 1.3}, []float64{1.3, 1.5}, 0.01, "assertNotEquals double[]")
		}),
		named("assertEquals double[][]", func() error {
			return assertions.EqualsWithin([][]float64{{1.3, 1.3}}, [][]float64{{1.3, 1.3}}, 0.01, "assertEquals double[][]")
		}),
		named("assertNotEquals double[][]", func() error {
			return assertions.NotEqualsWithin([][]float64{{1.3, 1.3}}, [][]float64{{1.3, 1.5}}, 0.01, "assertNotEquals double[][]")
		}),
		named("assertEquals double[][][]", func() error {
			return assertions.EqualsWithin([][][]float64{{{1.3, 1.3}}}, [][][]float64{{{1.3, 1.3}}}, 0.01, "assertEquals double[][][]")
		}),
		named("assertNotEquals double[][][]", func() error {
			return assertions.NotEqualsWithin([][][]float64{{{1.3, 1.3}}}, [][][]float64{{{1.3, 1.5}}}, 0.01, "assertNotEquals double[][][]")
		}),
		named("assertEquals double[][][][]", func() error {
			return assertions.EqualsWithin([][][][]float64{{{{1.3, 1.3}}}}, [][][][]float64{{{{1.3, 1.3}}}}, 0.01, "assertEquals double[][][][]")
		}),
		named("assertNotEquals double[][][][]", func() error {
			return assertions.NotEqualsWithin([][][][]float64{{{{1.3, 1.3}}}}, [][][][]float64{{{{1.3, 1.5}}}}, 0.01, "assertNotEquals double[][][][]")
		}),

		named("assertEquals float", func() error {
			return assertions.EqualsWithin(float32(1.3), float32(1.301), 0.01, "assertEquals float")
		}),
		named("assertNotEquals float", func() error {
			return assertions.NotEqualsWithin(float32(1.3), 1.4, 0.01, "assertNotEquals float")
		}),
		named("assertEquals float[]", func() error {
			return assertions.EqualsWithin([]float32{1.3, 1.3}, []float32{1.3, 1.3}, 0.01, "assertEquals float[]")
		}),
		named("assertNotEquals float[]", func() error {
			return assertions.NotEqualsWithin([]float32{1.3, 1.3}, []float32{1.3, 1.5}, 0.01, "assertNotEquals float[]")
		}),
		named("assertEquals float[][]", func() error {
			return assertions.EqualsWithin([][]float32{{1.3, 1.3}}, [][]float32{{1.3, 1.3}}, 0.01, "assertEquals float[][]")
		}),
		named("assertNotEquals float[][]", func() error {
			return assertions.NotEqualsWithin([][]float32{{1.3, 1.3}}, [][]float32{{1.3, 1.5}}, 0.01, "assertNotEquals float[][]")
		}),
		named("assertEquals float[][][]", func() error {
			return assertions.EqualsWithin([][][]float32{{{1.3, 1.3}}}, [][][]float32{{{1.3, 1.3}}}, 0.01, "assertEquals float[][][]")
		}),
		named("assertNotEquals float[][][]", func() error {
			return assertions.NotEqualsWithin([][][]float32{{{1.3, 1.3}}}, [][][]float32{{{1.3, 1.5}}}, 0.01, "assertNotEquals float[][][]")
		}),
		named("assertEquals float[][][][]", func() error {
			return assertions.EqualsWithin([][][][]float32{{{{1.3, 1.3}}}}, [][][][]float32{{{{1.3, 1.3}}}}, 0.01, "assertEquals float[][][][]")
		}),
		named("assertNotEquals float[][][][]", func() error {
			return assertions.NotEqualsWithin([][][][]float32{{{{1.3, 1.3}}}}, [][][][]float32{{{{1.3, 1.5}}}}, 0.01, "assertNotEquals float[][][][]")
		}),
	}
}

// exampleCases is the four-case example: two passes, then two failures.
func exampleCases() []runner.Case {
	return []runner.Case{
		named("pass 1", pass),
		named("pass 2", func() error { return assertions.True(true, "Pass 2") }),
		named("fail 1", func() error { return assertions.Equals(2, 3, "Fail 1") }),
		named("fail 2", func() error { return assertions.EqualsWithin(2.0, 3.0, 0.0001, "Fail 2") }),
	}
}

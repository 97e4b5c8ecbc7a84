package svgpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y float64) Point { return Point{X: x, Y: y} }

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Path
	}{
		{
			"implicit lines after move", "M0,0 10,10 20,20",
			Path{{MoveTo(pt(0, 0)), LineTo(pt(10, 10)), LineTo(pt(20, 20))}},
		},
		{
			"relative lines", "m10,10 5,5 l-5,0 h3 v-4",
			Path{{MoveTo(pt(10, 10)), LineTo(pt(15, 15)), LineTo(pt(10, 15)), LineTo(pt(13, 15)), LineTo(pt(13, 11))}},
		},
		{
			"absolute horizontal and vertical", "M1,2 H5 V7 H0 8",
			Path{{MoveTo(pt(1, 2)), LineTo(pt(5, 2)), LineTo(pt(5, 7)), LineTo(pt(0, 7)), LineTo(pt(8, 7))}},
		},
		{
			"smooth cubic reflects", "M0,0 C10,10 20,20 30,30 S40,40 50,50",
			Path{{MoveTo(pt(0, 0)), CubicTo{pt(10, 10), pt(20, 20), pt(30, 30)}, CubicTo{pt(40, 40), pt(40, 40), pt(50, 50)}}},
		},
		{
			"smooth cubic after line", "M10,10 L20,20 S30,0 40,10",
			Path{{MoveTo(pt(10, 10)), LineTo(pt(20, 20)), CubicTo{pt(20, 20), pt(30, 0), pt(40, 10)}}},
		},
		{
			"smooth cubic after quadratic", "M0,0 Q5,5 10,0 S15,5 20,0",
			Path{{MoveTo(pt(0, 0)), QuadTo{pt(5, 5), pt(10, 0)}, CubicTo{pt(10, 0), pt(15, 5), pt(20, 0)}}},
		},
		{
			"smooth quadratic chain", "M0,0 Q5,5 10,0 T20,0 30,0",
			Path{{MoveTo(pt(0, 0)), QuadTo{pt(5, 5), pt(10, 0)}, QuadTo{pt(15, -5), pt(20, 0)}, QuadTo{pt(25, 5), pt(30, 0)}}},
		},
		{
			"smooth quadratic after cubic", "M0,0 C1,1 2,2 3,3 T10,10",
			Path{{MoveTo(pt(0, 0)), CubicTo{pt(1, 1), pt(2, 2), pt(3, 3)}, QuadTo{pt(3, 3), pt(10, 10)}}},
		},
		{
			"relative smooth cubic", "m0,0 c10,0 20,10 30,10 s20,10 30,0",
			Path{{MoveTo(pt(0, 0)), CubicTo{pt(10, 0), pt(20, 10), pt(30, 10)}, CubicTo{pt(40, 10), pt(50, 20), pt(60, 10)}}},
		},
		{
			"relative quadratic", "m10,10 q5,-5 10,0 t10,0",
			Path{{MoveTo(pt(10, 10)), QuadTo{pt(15, 5), pt(20, 10)}, QuadTo{pt(25, 15), pt(30, 10)}}},
		},
		{
			"close adds the missing line", "M0,0 L10,0 L10,10 Z",
			Path{{MoveTo(pt(0, 0)), LineTo(pt(10, 0)), LineTo(pt(10, 10)), LineTo(pt(0, 0)), Close{}}},
		},
		{
			"close at start", "M0,0 L10,0 L0,0 Z",
			Path{{MoveTo(pt(0, 0)), LineTo(pt(10, 0)), LineTo(pt(0, 0)), Close{}}},
		},
		{
			"relative after close", "M10,10 L20,10 z l0,5",
			Path{
				{MoveTo(pt(10, 10)), LineTo(pt(20, 10)), LineTo(pt(10, 10)), Close{}},
				{MoveTo(pt(10, 10)), LineTo(pt(10, 15))},
			},
		},
		{
			"several subpaths", "M0,0 L1,0 Z M5,5 L6,5",
			Path{
				{MoveTo(pt(0, 0)), LineTo(pt(1, 0)), LineTo(pt(0, 0)), Close{}},
				{MoveTo(pt(5, 5)), LineTo(pt(6, 5))},
			},
		},
		{
			"relative move after subpath", "M5,5 L6,5 m1,1 1,0",
			Path{
				{MoveTo(pt(5, 5)), LineTo(pt(6, 5))},
				{MoveTo(pt(7, 6)), LineTo(pt(8, 6))},
			},
		},
		{
			"line without move", "L10,10",
			Path{{MoveTo(pt(0, 0)), LineTo(pt(10, 10))}},
		},
		{
			"curve without move", "C10,10 20,20 30,30S40,40 50,50",
			Path{{MoveTo(pt(0, 0)), CubicTo{pt(10, 10), pt(20, 20), pt(30, 30)}, CubicTo{pt(40, 40), pt(40, 40), pt(50, 50)}}},
		},
		{
			"compact numbers", "M10-5L-3.5.5",
			Path{{MoveTo(pt(10, -5)), LineTo(pt(-3.5, 0.5))}},
		},
		{
			"whitespace delimiters", " M 1 2\n\tL 3 4\r\n",
			Path{{MoveTo(pt(1, 2)), LineTo(pt(3, 4))}},
		},
		{
			"double close", "M1,1 L2,2 Z Z",
			Path{
				{MoveTo(pt(1, 1)), LineTo(pt(2, 2)), LineTo(pt(1, 1)), Close{}},
				{MoveTo(pt(1, 1)), Close{}},
			},
		},
		{
			"lone moves", "M1,1 M2,2",
			Path{{MoveTo(pt(1, 1))}, {MoveTo(pt(2, 2))}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, data := range []string{"", " ", " , \n\t"} {
		p, err := Parse(data)
		require.NoError(t, err)
		assert.True(t, p.Empty())
	}
}

func TestSubpathsStartWithMove(t *testing.T) {
	for _, data := range []string{
		"M0,0 L1,1 Z L2,2 H5 Z V3",
		"L1,1 Q2,2 3,3 T4,4 z c1,1 2,2 3,3 s1,1 2,2",
		"z z m1,1 z h1",
		"H10 V10 h-10 v-10 M3,3 t1,1",
	} {
		p, err := Parse(data)
		require.NoError(t, err, data)
		require.NotEmpty(t, p, data)
		for _, sp := range p {
			require.NotEmpty(t, sp, data)
			assert.IsType(t, MoveTo{}, sp[0], data)
			for i, op := range sp {
				if _, ok := op.(Close); ok {
					assert.Equal(t, len(sp)-1, i, "close must end its subpath: %s", data)
				}
			}
		}
	}
}

func TestParseUnknownCommand(t *testing.T) {
	tests := []struct {
		data string
		char rune
		pos  int
	}{
		{"M0,0 L5,5 X9,9", 'X', 10},
		{"10,10", '1', 0},
		{"  #", '#', 2},
		{"M0,0 L1,1 Z 5,5", '5', 12},
		{"M0,0 é", 'é', 5},
		{"M0,0 B1,1", 'B', 5},
	}
	for _, tt := range tests {
		p, err := Parse(tt.data)
		assert.Nil(t, p, tt.data)
		var cmdErr *CommandError
		require.ErrorAs(t, err, &cmdErr, tt.data)
		assert.Equal(t, tt.char, cmdErr.Char, tt.data)
		assert.Equal(t, tt.pos, cmdErr.Pos, tt.data)
		assert.ErrorIs(t, err, ErrUnknownCommand)
	}
}

func TestParseArcUnsupported(t *testing.T) {
	for _, data := range []string{
		"A0,0 0 0,0 10,10",
		"M0,0 a5,5 0 0 1 10,0",
		"M0,0 L1,1 A",
	} {
		p, err := Parse(data)
		assert.Nil(t, p, data)
		var unsupported *UnsupportedError
		require.ErrorAs(t, err, &unsupported, data)
		assert.Equal(t, "elliptical arc", unsupported.Command)
		assert.ErrorIs(t, err, ErrUnsupported)
	}
}

func TestParseMalformedNumber(t *testing.T) {
	tests := []struct {
		data string
		pos  int
	}{
		{"M10", 3},
		{"M1,2 L3", 7},
		{"M-,1", 1},
		{"M1,2 C1,2 3,4", 13},
		{"M1 .", 3},
	}
	for _, tt := range tests {
		p, err := Parse(tt.data)
		assert.Nil(t, p, tt.data)
		var numErr *NumberError
		require.ErrorAs(t, err, &numErr, tt.data)
		assert.Equal(t, tt.pos, numErr.Pos, tt.data)
	}
}

func TestMustParse(t *testing.T) {
	assert.NotPanics(t, func() { MustParse("M1,1 L2,2") })
	assert.Panics(t, func() { MustParse("M1,1 A1,1 0 0 0 2,2") })
}

func TestRoundTrip(t *testing.T) {
	for _, data := range []string{
		"M0,0 10,10 20,20",
		"m10,10 5,5 l-5,0 h3 v-4 z",
		"M0,0 C10,10 20,20 30,30 S40,40 50,50 Z M100,100 q5,-5 10,0 t10,0",
		"M0.5,-1.25 L3.75,2.5 h-0.5 v0.25",
		"M1,1 M2,2 L3,3 Z Z L4,4",
		"L10,10 c1,2 3,4 5,6 s7,8 9,10",
		"M123456.5,-0.125 Q1,2 3,4 T5,6",
	} {
		data := data
		t.Run(data, func(t *testing.T) {
			t.Parallel()
			p := MustParse(data)
			q, err := Parse(p.ToSVGPath())
			require.NoError(t, err)
			assert.Equal(t, p, q)
		})
	}
}

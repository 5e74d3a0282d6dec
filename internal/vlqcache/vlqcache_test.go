package vlqcache_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/blukai/vlq"
	"github.com/blukai/vlq/internal/vlqcache"
	"github.com/matryer/is"
)

func TestNewInvalidSize(t *testing.T) {
	is := is.New(t)

	_, err := vlqcache.New(0, nil)
	is.True(err != nil)

	_, err = vlqcache.New(-1, nil)
	is.True(err != nil)
}

func TestDecode(t *testing.T) {
	is := is.New(t)

	cache, err := vlqcache.New(8, nil)
	is.NoErr(err)

	for i := 0; i < 3; i++ {
		values, err := cache.Decode("2HwcqxB")
		is.NoErr(err)
		is.Equal(values, []int32{123, 456, 789})
	}
	is.Equal(cache.Len(), 1)
}

func TestDecodeReturnsCopy(t *testing.T) {
	is := is.New(t)

	cache, err := vlqcache.New(8, nil)
	is.NoErr(err)

	values, err := cache.Decode("QAIgB")
	is.NoErr(err)
	values[0] = 42

	values, err = cache.Decode("QAIgB")
	is.NoErr(err)
	is.Equal(values, []int32{8, 0, 4, 16})
}

func TestDecodeFailuresAreNotCached(t *testing.T) {
	is := is.New(t)

	cache, err := vlqcache.New(8, nil)
	is.NoErr(err)

	values, err := cache.Decode("Not a VLQ string")
	is.True(values == nil)
	is.True(errors.Is(err, vlq.ErrMalformed))
	is.Equal(cache.Len(), 0)
}

func TestEviction(t *testing.T) {
	is := is.New(t)

	cache, err := vlqcache.New(2, nil)
	is.NoErr(err)

	for _, input := range []string{"A", "C", "D", "2H"} {
		_, err := cache.Decode(input)
		is.NoErr(err)
	}
	is.Equal(cache.Len(), 2)

	values, err := cache.Decode("A")
	is.NoErr(err)
	is.Equal(values, []int32{0})
}

func TestConcurrentDecode(t *testing.T) {
	is := is.New(t)

	cache, err := vlqcache.New(4, nil)
	is.NoErr(err)

	inputs := map[string][]int32{
		"A":       {0},
		"B":       {vlq.MinInt},
		"+/////D": {vlq.MaxInt},
		"2HwcqxB": {123, 456, 789},
		"QAIgB":   {8, 0, 4, 16},
	}

	wg := &sync.WaitGroup{}
	errs := make(chan error, 16*len(inputs))
	for i := 0; i < 16; i++ {
		for input, want := range inputs {
			wg.Add(1)
			go func(input string, want []int32) {
				defer wg.Done()
				values, err := cache.Decode(input)
				if err != nil {
					errs <- err
					return
				}
				if vlq.Encode(values) != vlq.Encode(want) {
					errs <- errors.New("unexpected values for " + input)
				}
			}(input, want)
		}
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		is.NoErr(err)
	}
}

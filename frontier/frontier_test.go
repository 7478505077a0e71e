package frontier_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mazepath/frontier"
)

// FrontierSuite exercises the four-operation contract plus helpers.
type FrontierSuite struct {
	suite.Suite
	f *frontier.Frontier[string]
}

func (s *FrontierSuite) SetupTest() {
	s.f = frontier.New[string]()
}

// TestEmpty verifies a fresh frontier is empty and PopMin fails.
func (s *FrontierSuite) TestEmpty() {
	require.True(s.T(), s.f.IsEmpty())
	_, _, err := s.f.PopMin()
	require.ErrorIs(s.T(), err, frontier.ErrEmpty)
}

// TestInsertDuplicate rejects a second insert of the same item.
func (s *FrontierSuite) TestInsertDuplicate() {
	require.NoError(s.T(), s.f.Insert("A", 5))
	require.ErrorIs(s.T(), s.f.Insert("A", 1), frontier.ErrDuplicate)
	k, ok := s.f.Key("A")
	require.True(s.T(), ok)
	require.Equal(s.T(), 5, k, "failed insert must not change the key")
}

// TestPopOrder checks items come out in key order.
func (s *FrontierSuite) TestPopOrder() {
	for item, key := range map[string]int{"C": 30, "A": 10, "B": 20, "D": 5} {
		require.NoError(s.T(), s.f.Insert(item, key))
	}
	var got []string
	for !s.f.IsEmpty() {
		item, _, err := s.f.PopMin()
		require.NoError(s.T(), err)
		got = append(got, item)
	}
	require.Equal(s.T(), []string{"D", "A", "B", "C"}, got)
}

// TestTieBreakIsInsertionOrder checks equal keys pop first-in first-out.
func (s *FrontierSuite) TestTieBreakIsInsertionOrder() {
	for _, item := range []string{"x", "y", "z", "w"} {
		require.NoError(s.T(), s.f.Insert(item, 7))
	}
	for _, want := range []string{"x", "y", "z", "w"} {
		got, key, err := s.f.PopMin()
		require.NoError(s.T(), err)
		require.Equal(s.T(), want, got)
		require.Equal(s.T(), 7, key)
	}
}

// TestDecreaseKey moves an item to the front.
func (s *FrontierSuite) TestDecreaseKey() {
	require.NoError(s.T(), s.f.Insert("A", 10))
	require.NoError(s.T(), s.f.Insert("B", 20))
	require.NoError(s.T(), s.f.Insert("C", 30))
	require.NoError(s.T(), s.f.DecreaseKey("C", 1))

	item, key, err := s.f.PopMin()
	require.NoError(s.T(), err)
	require.Equal(s.T(), "C", item)
	require.Equal(s.T(), 1, key)
	require.False(s.T(), s.f.Contains("C"))
	require.Equal(s.T(), 2, s.f.Len())
}

// TestDecreaseKeyRejectsIncrease covers the monotonic-decrease contract.
func (s *FrontierSuite) TestDecreaseKeyRejectsIncrease() {
	require.NoError(s.T(), s.f.Insert("A", 10))
	require.ErrorIs(s.T(), s.f.DecreaseKey("A", 11), frontier.ErrKeyNotDecreased)
	require.ErrorIs(s.T(), s.f.DecreaseKey("A", 10), frontier.ErrKeyNotDecreased)
	k, _ := s.f.Key("A")
	require.Equal(s.T(), 10, k, "rejected decrease must leave the key unchanged")

	require.ErrorIs(s.T(), s.f.DecreaseKey("missing", 1), frontier.ErrAbsent)
}

// TestUpsert inserts then decreases.
func (s *FrontierSuite) TestUpsert() {
	require.NoError(s.T(), s.f.Upsert("A", 10))
	require.NoError(s.T(), s.f.Upsert("A", 4))
	require.ErrorIs(s.T(), s.f.Upsert("A", 9), frontier.ErrKeyNotDecreased)
	k, ok := s.f.Key("A")
	require.True(s.T(), ok)
	require.Equal(s.T(), 4, k)
}

// TestReinsertAfterPop allows an item to come back once it has left.
func (s *FrontierSuite) TestReinsertAfterPop() {
	require.NoError(s.T(), s.f.Insert("A", 3))
	_, _, err := s.f.PopMin()
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.f.Insert("A", 8))
	_, ok := s.f.Key("missing")
	require.False(s.T(), ok)
}

func TestFrontierSuite(t *testing.T) {
	suite.Run(t, new(FrontierSuite))
}

// TestRandomizedAgainstSort pushes random keys, decreases some, and checks the
// pop sequence is sorted.
func TestRandomizedAgainstSort(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	f := frontier.New[int]()
	keys := make(map[int]int)
	for i := 0; i < 500; i++ {
		k := r.Intn(1000)
		require.NoError(t, f.Insert(i, k))
		keys[i] = k
	}
	for i := 0; i < 500; i += 3 {
		nk := keys[i] - 1 - r.Intn(50)
		require.NoError(t, f.DecreaseKey(i, nk))
		keys[i] = nk
	}

	want := make([]int, 0, len(keys))
	for _, k := range keys {
		want = append(want, k)
	}
	sort.Ints(want)

	got := make([]int, 0, len(keys))
	for !f.IsEmpty() {
		item, k, err := f.PopMin()
		require.NoError(t, err)
		require.Equal(t, keys[item], k)
		got = append(got, k)
	}
	require.Equal(t, want, got)
}

func BenchmarkFrontier(b *testing.B) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < b.N; i++ {
		f := frontier.New[int]()
		for j := 0; j < 10000; j++ {
			_ = f.Insert(j, r.Intn(1<<20))
		}
		for j := 0; j < 10000; j += 2 {
			k, _ := f.Key(j)
			_ = f.DecreaseKey(j, k-1)
		}
		for !f.IsEmpty() {
			_, _, _ = f.PopMin()
		}
	}
}

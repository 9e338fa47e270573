package memhashmap

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestTable_Insert(t *testing.T) {
	t.Run("inserted keys are found with their values", func(t *testing.T) {
		// Prepare
		h := New(stringOptions())

		// Execute
		for i := 0; i < 1000; i++ {
			require.Truef(t, h.Insert(fmt.Sprintf("key-%d", i), fmt.Sprintf("value-%d", i)), "inserts key #%d", i)
		}

		// Check
		assert.Equal(t, 1000, h.Count(), "all entries counted")
		for i := 0; i < 1000; i++ {
			value, found := h.Find(fmt.Sprintf("key-%d", i))
			assert.Truef(t, found, "finds key #%d", i)
			assert.Equalf(t, fmt.Sprintf("value-%d", i), value, "correct value for key #%d", i)
		}
	})

	t.Run("a duplicate key is rejected without any side effect", func(t *testing.T) {
		// Prepare
		dups, frees := 0, 0
		opts := stringOptions()
		opts.DupValue = func(v string) string { dups++; return v }
		opts.Free = func(*Kv[string, string]) { frees++ }
		h := New(opts)
		require.True(t, h.Insert("key", "v1"), "first insert")

		// Execute
		inserted := h.Insert("key", "v2")

		// Check
		assert.False(t, inserted, "duplicate rejected")
		assert.Equal(t, 1, h.Count(), "count unchanged")
		assert.Equal(t, "v1", h.FindValue("key"), "original value kept")
		assert.Equal(t, 1, dups, "value only duplicated for the first insert")
		assert.Equal(t, 0, frees, "nothing freed")
	})

	t.Run("cached lengths are filled from the size functions", func(t *testing.T) {
		// Prepare
		h := New(stringOptions())

		// Execute
		h.Insert("four", "sixsix")

		// Check
		kv, found := h.FindKv("four")
		require.True(t, found, "entry found")
		assert.Equal(t, uint32(4), kv.KeyLen, "key length")
		assert.Equal(t, uint32(6), kv.ValueLen, "value length")
	})

	t.Run("keys and values are duplicated when asked for", func(t *testing.T) {
		// Prepare
		opts := Options[string, []byte]{
			DupValue: func(v []byte) []byte { return append([]byte(nil), v...) },
		}
		h := New(opts)
		value := []byte("value")

		// Execute
		h.Insert("key", value)
		value[0] = 'X'

		// Check
		stored, _ := h.Find("key")
		assert.Equal(t, []byte("value"), stored, "stored copy unaffected")
	})
}

func TestTable_Update(t *testing.T) {
	t.Run("update replaces the value and keeps the count", func(t *testing.T) {
		// Prepare
		var freed []string
		opts := stringOptions()
		opts.Free = func(kv *Kv[string, string]) { freed = append(freed, kv.Value) }
		h := New(opts)
		require.True(t, h.Insert("key", "v1"), "insert")
		require.True(t, h.Insert("other", "o1"), "insert other")

		// Execute
		updated := h.Update("key", "v2")

		// Check
		assert.True(t, updated, "updated")
		assert.Equal(t, 2, h.Count(), "count unchanged")
		assert.Equal(t, "v2", h.FindValue("key"), "new value")
		assert.Equal(t, []string{"v1"}, freed, "old entry freed")
	})

	t.Run("update adds a missing key", func(t *testing.T) {
		// Prepare
		h := New(stringOptions())

		// Execute
		updated := h.Update("key", "v1")

		// Check
		assert.True(t, updated, "added")
		assert.Equal(t, 1, h.Count(), "one entry")
		assert.Equal(t, "v1", h.FindValue("key"), "value")
	})
}

func TestTable_InsertKv(t *testing.T) {
	t.Run("inserts a caller built entry and recomputes its key length", func(t *testing.T) {
		// Prepare
		h := New(stringOptions())
		kv := &Kv[string, string]{Key: "key", Value: "value", KeyLen: 99}

		// Execute
		inserted := h.InsertKv(kv, false)

		// Check
		assert.True(t, inserted, "inserted")
		found, ok := h.FindKv("key")
		require.True(t, ok, "found")
		assert.Same(t, kv, found, "same entry stored")
		assert.Equal(t, uint32(3), found.KeyLen, "key length recomputed")
	})

	t.Run("rejects duplicates unless updating", func(t *testing.T) {
		// Prepare
		h := New(stringOptions())
		require.True(t, h.InsertKv(&Kv[string, string]{Key: "key", Value: "v1"}, false), "first entry")

		// Execute
		duplicate := h.InsertKv(&Kv[string, string]{Key: "key", Value: "v2"}, false)
		updated := h.InsertKv(&Kv[string, string]{Key: "key", Value: "v3"}, true)

		// Check
		assert.False(t, duplicate, "duplicate rejected")
		assert.True(t, updated, "update accepted")
		assert.Equal(t, "v3", h.FindValue("key"), "updated value")
		assert.Equal(t, 1, h.Count(), "one entry")
	})

	t.Run("a stored entry passed back as an update stays in place", func(t *testing.T) {
		// Prepare
		frees := 0
		opts := stringOptions()
		opts.Free = func(*Kv[string, string]) { frees++ }
		h := New(opts)
		require.True(t, h.Insert("key", "value"), "insert")
		kv, found := h.FindKv("key")
		require.True(t, found, "found")
		kv.Value = "longer value"

		// Execute
		updated := h.InsertKv(kv, true)

		// Check
		assert.True(t, updated, "updated")
		assert.Equal(t, 0, frees, "stored entry not freed")
		assert.Equal(t, 1, h.Count(), "count unchanged")
		stored, _ := h.FindKv("key")
		assert.Same(t, kv, stored, "same entry stored")
		assert.Equal(t, "longer value", stored.Value, "changed value kept")
		assert.Equal(t, uint32(12), stored.ValueLen, "value length refreshed")
		assert.False(t, h.InsertKv(kv, false), "strict insert of the stored entry rejected")

		h.Free()
		assert.Equal(t, 1, frees, "freed once with the table")
	})

	t.Run("rejects a nil entry", func(t *testing.T) {
		h := New(stringOptions())
		assert.False(t, h.InsertKv(nil, true), "nil rejected")
	})
}

func TestTable_Find(t *testing.T) {
	t.Run("reports missing keys", func(t *testing.T) {
		// Prepare
		h := New(stringOptions())
		h.Insert("key", "value")

		// Execute
		value, found := h.Find("missing")

		// Check
		assert.False(t, found, "not found")
		assert.Equal(t, "", value, "zero value")
		assert.Equal(t, "", h.FindValue("missing"), "zero value sentinel")
	})

	t.Run("key length is compared before the keys", func(t *testing.T) {
		// Prepare
		compares := 0
		opts := stringOptions()
		opts.Hash = oneBucket
		opts.Compare = func(a, b string) int { compares++; return strings.Compare(a, b) }
		h := New(opts)
		h.Insert("a", "1")
		h.Insert("bb", "2")
		h.Insert("ccc", "3")
		compares = 0

		// Execute
		_, found := h.Find("dd")

		// Check
		assert.False(t, found, "not found")
		assert.Equal(t, 1, compares, "only the entry with the same length compared")
	})

	t.Run("a custom comparator defines key equality", func(t *testing.T) {
		// Prepare
		opts := stringOptions()
		opts.Hash = func(key string) uint32 { return hashLower(key) }
		opts.Compare = func(a, b string) int {
			if strings.EqualFold(a, b) {
				return 0
			}
			return strings.Compare(a, b)
		}
		h := New(opts)
		h.Insert("Hello", "world")

		// Execute
		value, found := h.Find("hELLO")

		// Check
		assert.True(t, found, "found ignoring case")
		assert.Equal(t, "world", value, "correct value")
		assert.False(t, h.Insert("HELLO", "again"), "same key in another case is a duplicate")
	})
}

// hashLower - Case insensitive hash for the comparator test
func hashLower(key string) uint32 {
	h := uint32(0)
	for _, c := range strings.ToLower(key) {
		h = h*31 + uint32(c)
	}
	return h
}

func TestTable_Delete(t *testing.T) {
	t.Run("delete removes the entry and shrinks the count", func(t *testing.T) {
		// Prepare
		frees := 0
		opts := stringOptions()
		opts.Free = func(*Kv[string, string]) { frees++ }
		h := New(opts)
		h.Insert("key", "value")
		h.Insert("other", "value")

		// Execute
		deleted := h.Delete("key")

		// Check
		assert.True(t, deleted, "deleted")
		assert.Equal(t, 1, h.Count(), "count decremented")
		_, found := h.Find("key")
		assert.False(t, found, "no longer found")
		assert.Equal(t, 1, frees, "entry freed")
	})

	t.Run("deleting a missing key fails", func(t *testing.T) {
		// Prepare
		h := New(stringOptions())

		// Execute
		deleted := h.Delete("non existing")

		// Check
		assert.False(t, deleted, "nothing deleted")
		assert.Equal(t, 0, h.Count(), "count unchanged")
	})
}

func TestTable_ErrorAPI(t *testing.T) {
	t.Run("get reports missing keys with KeyNotFound", func(t *testing.T) {
		// Prepare
		h := New(stringOptions())
		require.NoError(t, h.Add("key", "value"), "add")

		// Execute
		value, err := h.Get("key")
		_, errMissing := h.Get("missing")

		// Check
		assert.NoError(t, err, "existing key")
		assert.Equal(t, "value", value, "correct value")
		assert.ErrorIs(t, errMissing, KeyNotFound{}, "correct error")
	})

	t.Run("add reports duplicates with DuplicateKey", func(t *testing.T) {
		// Prepare
		h := New(stringOptions())
		require.NoError(t, h.Add("key", "value"), "add")

		// Execute
		err := h.Add("key", "other")

		// Check
		assert.ErrorIs(t, err, DuplicateKey{}, "correct error")
		assert.Equal(t, "value", h.FindValue("key"), "value kept")
	})

	t.Run("pop returns and removes the value", func(t *testing.T) {
		// Prepare
		h := New(stringOptions())
		keys := make([]string, 1000)
		for i := range keys {
			keys[i] = fmt.Sprintf("key-%d", i)
			require.NoErrorf(t, h.Add(keys[i], fmt.Sprintf("value-%d", i)), "adds key #%d", i)
		}

		// Execute
		for i, key := range keys {
			value, err := h.Pop(key)
			assert.NoErrorf(t, err, "pops key #%d", i)
			assert.Equalf(t, fmt.Sprintf("value-%d", i), value, "correct value for key #%d", i)
		}

		// Check
		assert.Equal(t, 0, h.Count(), "table empty")
		for i, key := range keys {
			_, err := h.Pop(key)
			assert.ErrorIsf(t, err, KeyNotFound{}, "correct error popping key #%d again", i)
		}
	})

	t.Run("errors carry a readable message", func(t *testing.T) {
		assert.Equal(t, "key not found", KeyNotFound{}.Error(), "key not found message")
		assert.Equal(t, "duplicate key", DuplicateKey{}.Error(), "duplicate key message")
		assert.Equal(t, "invalid or freed table", InvalidTable{}.Error(), "invalid table message")
	})
}

func TestTable_Scenario(t *testing.T) {
	t.Run("insert, lookup, update and delete with string defaults", func(t *testing.T) {
		// Prepare
		h := NewString(Options[string, string]{})

		// Execute and Check
		assert.True(t, h.Insert("AAAA", "vAAAA"), "insert AAAA")
		assert.True(t, h.Insert("BBBB", "vBBBB"), "insert BBBB")
		assert.True(t, h.Insert("CCCC", "vCCCC"), "insert CCCC")

		value, found := h.Find("BBBB")
		assert.True(t, found, "BBBB found")
		assert.Equal(t, "vBBBB", value, "BBBB value")

		assert.True(t, h.Update("AAAA", "vDDDD"), "update AAAA")
		value, found = h.Find("AAAA")
		assert.True(t, found, "AAAA found")
		assert.Equal(t, "vDDDD", value, "AAAA updated value")

		assert.True(t, h.Delete("AAAA"), "delete AAAA")
		_, found = h.Find("AAAA")
		assert.False(t, found, "AAAA gone")
		assert.Equal(t, 2, h.Count(), "two entries left")
	})
}

func TestTable_Foreach(t *testing.T) {
	t.Run("visits every entry exactly once", func(t *testing.T) {
		// Prepare
		h := New(stringOptions())
		for i := 0; i < 500; i++ {
			h.Insert(fmt.Sprintf("key-%d", i), fmt.Sprintf("value-%d", i))
		}

		// Execute
		seen := map[string]string{}
		visits := 0
		h.Foreach(func(key, value string) bool {
			seen[key] = value
			visits++
			return true
		})

		// Check
		assert.Equal(t, h.Count(), visits, "visits equal count")
		assert.Len(t, seen, 500, "every key seen")
		for i := 0; i < 500; i++ {
			assert.Equalf(t, fmt.Sprintf("value-%d", i), seen[fmt.Sprintf("key-%d", i)], "value of key #%d", i)
		}
	})

	t.Run("visits a bucket from the most recently inserted entry", func(t *testing.T) {
		// Prepare
		opts := stringOptions()
		opts.Hash = oneBucket
		opts.InitialSize = 100
		h := New(opts)
		for _, key := range []string{"first", "second", "third"} {
			h.Insert(key, key)
		}

		// Execute
		var order []string
		for key := range h.All() {
			order = append(order, key)
		}

		// Check
		assert.Equal(t, []string{"third", "second", "first"}, order, "most recent first")
	})

	t.Run("stops as soon as the callback returns false", func(t *testing.T) {
		// Prepare
		h := New(stringOptions())
		for i := 0; i < 100; i++ {
			h.Insert(fmt.Sprintf("key-%d", i), "value")
		}

		// Execute
		visits := 0
		h.Foreach(func(string, string) bool {
			visits++
			return visits < 7
		})

		// Check
		assert.Equal(t, 7, visits, "stopped after seven entries")
	})

	t.Run("the callback may delete the entry it is visiting", func(t *testing.T) {
		// Prepare
		opts := stringOptions()
		opts.Hash = oneBucket
		h := New(opts)
		h.Insert("a", "drop")
		h.Insert("b", "keep")
		h.Insert("c", "drop")

		// Execute
		visits := 0
		h.Foreach(func(key, value string) bool {
			visits++
			if value == "drop" {
				assert.Truef(t, h.Delete(key), "deletes %s", key)
			}
			return true
		})

		// Check
		assert.Equal(t, 3, visits, "every entry visited")
		assert.Equal(t, 1, h.Count(), "one entry left")
		assert.Equal(t, "keep", h.FindValue("b"), "kept entry")
	})

	t.Run("range over all entries can break early", func(t *testing.T) {
		// Prepare
		h := New(stringOptions())
		for i := 0; i < 10; i++ {
			h.Insert(fmt.Sprintf("key-%d", i), "value")
		}

		// Execute
		visits := 0
		for range h.All() {
			visits++
			if visits == 3 {
				break
			}
		}

		// Check
		assert.Equal(t, 3, visits, "stopped after break")
	})
}

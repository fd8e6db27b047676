package table

import (
	"fmt"
	"testing"

	"kopadb/schema"
)

func benchUsers(b *testing.B) *Table {
	b.Helper()
	tbl, err := New("users", []schema.Column{
		{Name: "id", Type: schema.TypeInt},
		{Name: "name", Type: schema.TypeText},
		{Name: "age", Type: schema.TypeInt},
	}, "id", nil)
	if err != nil {
		b.Fatalf("create table: %v", err)
	}
	return tbl
}

func fillUsers(b *testing.B, tbl *Table, n int) {
	b.Helper()
	for i := 0; i < n; i++ {
		if _, err := tbl.InsertMap(map[string]interface{}{"id": i, "name": fmt.Sprintf("User%d", i), "age": 20 + i%50}); err != nil {
			b.Fatalf("insert failed: %v", err)
		}
	}
}

// BenchmarkInsert measures the performance of inserting rows
func BenchmarkInsert(b *testing.B) {
	tbl := benchUsers(b)
	b.ResetTimer()
	fillUsers(b, tbl, b.N)
}

// BenchmarkSelectIndexed measures lookups on an indexed column
func BenchmarkSelectIndexed(b *testing.B) {
	tbl := benchUsers(b)
	fillUsers(b, tbl, 1000)
	if err := tbl.CreateIndex("age"); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tbl.Select([]Filter{Eq("age", 20+i%50)}); err != nil {
			b.Fatalf("select failed: %v", err)
		}
	}
}

// BenchmarkSelectScan measures lookups that scan every row
func BenchmarkSelectScan(b *testing.B) {
	tbl := benchUsers(b)
	fillUsers(b, tbl, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tbl.Select([]Filter{Eq("age", 20+i%50)}); err != nil {
			b.Fatalf("select failed: %v", err)
		}
	}
}

package world

import "testing"

func BenchmarkPopulateChunk(b *testing.B) {
	g := NewGenerator(1337)
	ch := NewChunk(0, 0, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.PopulateChunk(ch)
	}
}

func BenchmarkHeightAt(b *testing.B) {
	w := New(1337)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = w.SurfaceHeightAt(i%1024, (i*31)%1024)
	}
}

package entity

import (
	"testing"
)

func BenchmarkAccessors(b *testing.B) {
	f := newFixture(b)
	et := f.newType("mover", f.health, f.position, f.velocity, f.sprite)
	tr := newMemTranche(4, 1024)

	b.Run("Get Cached", func(b *testing.B) {
		et.Accessors("Drawable")
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = et.Get("Drawable", tr, i&1023)
		}
	})

	b.Run("Bound Get", func(b *testing.B) {
		a := et.Accessors("Drawable")
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = a.Get(tr, i&1023)
		}
	})

	b.Run("Resolve", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = et.Resolve("Spatial")
		}
	})

	b.Run("Parallel TryGet", func(b *testing.B) {
		et.Accessors("Position")
		b.RunParallel(func(pb *testing.PB) {
			row := 0
			for pb.Next() {
				_, _ = et.TryGet("Position", tr, row&1023)
				row++
			}
		})
	})
}

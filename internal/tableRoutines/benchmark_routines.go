package tableRoutines

import (
	"testing"
)

func DoBenchmarkInsert(b *testing.B, factoryFunc TableFactoryFunc, keyType string) {
	b.StopTimer()
	table := factoryFunc(b.N + 1)
	keys := GenerateKeys(b.N, keyType)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		table.Insert(keys[i], i)
	}
}

func DoBenchmarkSearch(b *testing.B, factoryFunc TableFactoryFunc, keyAmount int, keyType string) {
	b.StopTimer()
	table := factoryFunc(keyAmount * 2)
	keys := GenerateKeys(keyAmount, keyType)
	for i, key := range keys {
		table.Insert(key, i)
	}
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		table.Search(keys[i%keyAmount])
	}
}

func DoBenchmarkRemove(b *testing.B, factoryFunc TableFactoryFunc, keyType string) {
	b.StopTimer()
	table := factoryFunc(b.N + 1)
	keys := GenerateKeys(b.N, keyType)
	for i, key := range keys {
		table.Insert(key, i)
	}
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		table.Remove(keys[i])
	}
}

package fair

// ChunkSize - байт на один символ
const ChunkSize = 4

// ChunkValue читает чанк из 4 байт как дробь по основанию 256 в [0, 1),
// старший байт первым
func ChunkValue(chunk []byte) float64 {
	var (
		value   float64
		divisor float64 = 1
	)
	for i := 0; i < ChunkSize; i++ {
		divisor *= 256
		value += float64(chunk[i]) / divisor
	}
	return value
}

// Cumulative - накопленные суммы весов по порядку
func Cumulative(weights []float64) []float64 {
	cumulative := make([]float64, len(weights))
	var sum float64
	for i, w := range weights {
		sum += w
		cumulative[i] = sum
	}
	return cumulative
}

// MapChunk переводит чанк в индекс весов.
// Цель, равная границе накопленной суммы, дает меньший индекс
func MapChunk(chunk []byte, weights []float64) int {
	return pickIndex(ChunkValue(chunk), Cumulative(weights))
}

// Mapper - маппинг чанков по фиксированным весам
type Mapper struct {
	cumulative []float64
}

// NewMapper заранее считает накопленные веса
func NewMapper(weights []float64) *Mapper {
	return &Mapper{cumulative: Cumulative(weights)}
}

// Map возвращает индекс для чанка
func (m *Mapper) Map(chunk []byte) int {
	return pickIndex(ChunkValue(chunk), m.cumulative)
}

func pickIndex(value float64, cumulative []float64) int {
	if len(cumulative) == 0 {
		return 0
	}
	target := value * cumulative[len(cumulative)-1]
	for i, c := range cumulative {
		if target <= c {
			return i
		}
	}
	return len(cumulative) - 1
}

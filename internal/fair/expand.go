package fair

import "strconv"

const (
	// ExpandBlocks - блоков HMAC на раунд
	ExpandBlocks = 2
	// ExpandSize - длина потока байт
	ExpandSize = ExpandBlocks * 32
)

// Expand строит поток байт раунда: HMAC-SHA256 по серверному сиду
// от "client:round:block" для каждого блока, склеенные по порядку
func Expand(secretSeed, clientSeed string, round uint64) []byte {
	key := []byte(secretSeed)
	out := make([]byte, 0, ExpandSize)
	for block := 0; block < ExpandBlocks; block++ {
		out = append(out, HMACSHA256(key, message(clientSeed, round, block))...)
	}
	return out
}

func message(clientSeed string, round uint64, block int) []byte {
	msg := make([]byte, 0, len(clientSeed)+24)
	msg = append(msg, clientSeed...)
	msg = append(msg, ':')
	msg = strconv.AppendUint(msg, round, 10)
	msg = append(msg, ':')
	msg = strconv.AppendInt(msg, int64(block), 10)
	return msg
}

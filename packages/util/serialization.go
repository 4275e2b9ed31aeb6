package util

import (
	"fmt"

	"github.com/near/borsh-go"
)

func MustSerialize(obj interface{}) []byte {
	ret, err := borsh.Serialize(obj)
	if err != nil {
		panic(err)
	}
	return ret
}

// DeserializePrefix decodes a T from the first size bytes of data.
// Anything after them is left alone.
func DeserializePrefix[T any](data []byte, size int) (T, error) {
	s := new(T)
	if len(data) < size {
		return *s, fmt.Errorf("need %d bytes, got %d", size, len(data))
	}
	err := borsh.Deserialize(s, data[:size])
	return *s, err
}

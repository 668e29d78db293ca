package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONMap 存储在TEXT列中的JSON对象
type JSONMap map[string]interface{}

// Value 序列化为JSON字符串写入数据库
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		m = JSONMap{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan 从数据库读取并解析
// 列值为NULL或JSON损坏时退化为空对象，不向上抛错
func (m *JSONMap) Scan(src interface{}) error {
	*m = JSONMap{}

	data, err := blobBytes(src)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	*m = JSONMap(out)
	return nil
}

// JSONArray 存储在TEXT列中的JSON数组
type JSONArray []interface{}

// Value 序列化为JSON字符串写入数据库
func (a JSONArray) Value() (driver.Value, error) {
	if a == nil {
		a = JSONArray{}
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan 从数据库读取并解析
// 列值为NULL或JSON损坏时退化为空数组，不向上抛错
func (a *JSONArray) Scan(src interface{}) error {
	*a = JSONArray{}

	data, err := blobBytes(src)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	var out []interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	*a = JSONArray(out)
	return nil
}

// blobBytes 将驱动返回的列值统一转成字节切片
func blobBytes(src interface{}) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("无法将 %T 解析为JSON列", src)
	}
}

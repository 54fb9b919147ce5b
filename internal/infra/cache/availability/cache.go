package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/alejandrums/pkg/types"
)

const keyPrefix = "alejandrums:availability:"

// DefaultTTL время жизни записи, если в конфиге не указано другое
const DefaultTTL = 5 * time.Minute

// ErrDecode возвращается, если в кэше лежит повреждённое значение
var ErrDecode = errors.New("availability.cache: failed to decode entry")

// versionTTL время жизни счётчика версий. Должно быть больше времени чтения из хранилища
const versionTTL = 24 * time.Hour

// setIfVersion пишет запись, только если версия не менялась с момента Get
var setIfVersion = redis.NewScript(`
local current = redis.call('GET', KEYS[2])
if not current then
	current = '0'
end
if current ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
return 1
`)

// RedisCache кэш занятых часов зала на дату в Redis
// Рядом с записью хранится счётчик версий; Invalidate его увеличивает,
// поэтому Set со значением, прочитанным до изменения резервов, не применяется
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache создаёт кэш поверх клиента Redis
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCache{client: client, ttl: ttl}
}

// Get возвращает занятые часы и версию записи. found=false, если записи нет
// Версию нужно передать в Set после чтения из хранилища
func (c *RedisCache) Get(ctx context.Context, roomID int64, date types.Date) ([]int, string, bool, error) {
	key := Key(roomID, date)
	vals, err := c.client.MGet(ctx, key, versionKey(key)).Result()
	if err != nil {
		return nil, "", false, err
	}

	version := "0"
	if v, ok := vals[1].(string); ok {
		version = v
	}

	data, ok := vals[0].(string)
	if !ok {
		return nil, version, false, nil
	}

	hours, err := decode([]byte(data))
	if err != nil {
		return nil, version, false, err
	}
	return hours, version, true, nil
}

// Set сохраняет занятые часы (в том числе пустой список)
// Если после Get была инвалидация, запись пропускается
func (c *RedisCache) Set(ctx context.Context, roomID int64, date types.Date, hours []int, version string) error {
	if version == "" {
		return nil
	}

	data, err := encode(hours)
	if err != nil {
		return err
	}

	key := Key(roomID, date)
	return setIfVersion.Run(ctx, c.client,
		[]string{key, versionKey(key)},
		version, string(data), c.ttl.Milliseconds(),
	).Err()
}

// Invalidate удаляет запись и увеличивает версию после изменения резервов
func (c *RedisCache) Invalidate(ctx context.Context, roomID int64, date types.Date) error {
	key := Key(roomID, date)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey(key))
		pipe.PExpire(ctx, versionKey(key), versionTTL)
		pipe.Del(ctx, key)
		return nil
	})
	return err
}

// Key ключ записи для зала и даты
func Key(roomID int64, date types.Date) string {
	return fmt.Sprintf("%s%d:%s", keyPrefix, roomID, date)
}

func versionKey(key string) string {
	return key + ":ver"
}

func encode(hours []int) ([]byte, error) {
	if hours == nil {
		hours = []int{}
	}
	return json.Marshal(hours)
}

func decode(data []byte) ([]int, error) {
	var hours []int
	if err := json.Unmarshal(data, &hours); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return hours, nil
}

// NopCache используется, когда Redis выключен: всегда промах
type NopCache struct{}

func (NopCache) Get(context.Context, int64, types.Date) ([]int, string, bool, error) {
	return nil, "", false, nil
}

func (NopCache) Set(context.Context, int64, types.Date, []int, string) error { return nil }

func (NopCache) Invalidate(context.Context, int64, types.Date) error { return nil }

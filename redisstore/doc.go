// Package redisstore loads message catalogs from Redis hashes.
//
// One hash per (locale, namespace) pair, keyed "<prefix>:<locale>:<namespace>"
// with message keys as hash fields:
//
//	HSET i18n:en:tests hello "Hello, {0}!" bye "Bye!"
//
// Typical use is as the dynamic-override source in front of file catalogs:
//
//	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	loader := redisstore.NewLoader(client, redisstore.WithPrefix("i18n"))
package redisstore

package service

import (
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// keyTimeLayout - метка времени в ключе объекта, 24-часовой формат в UTC с миллисекундами.
const keyTimeLayout = "2006.01.02-15.04.05.000"

// objectKey строит ключ объекта: {userID}/{name}_{timestamp}-{nonce}{ext},
// где name - очищенное исходное имя файла, ext - его расширение.
// nonce различает загрузки одного имени в одну и ту же миллисекунду.
func objectKey(userID int64, fileName string, now time.Time, nonce string) string {
	name := sanitizeFileName(fileName)

	return fmt.Sprintf("%d/%s_%s-%s%s", userID, name, now.UTC().Format(keyTimeLayout), nonce, path.Ext(name))
}

// keyNonce - короткий случайный суффикс ключа.
func keyNonce() string {
	return uuid.NewString()[:8]
}

// sanitizeFileName отбрасывает каталоги и заменяет пробельные символы на "_".
func sanitizeFileName(fileName string) string {
	name := path.Base(strings.ReplaceAll(fileName, `\`, "/"))
	name = strings.Join(strings.Fields(name), "_")

	if name == "" || name == "." || name == "/" {
		return "photo"
	}

	return name
}

// keyFromURL восстанавливает ключ объекта по публичному URL фотографии:
// {userID}/{последний сегмент URL}. ok == false, если сегмент пустой.
func keyFromURL(userID int64, rawURL string) (key string, ok bool) {
	segment := rawURL[strings.LastIndex(rawURL, "/")+1:]
	if unescaped, err := url.PathUnescape(segment); err == nil {
		segment = unescaped
	}

	if segment == "" {
		return "", false
	}

	return fmt.Sprintf("%d/%s", userID, segment), true
}

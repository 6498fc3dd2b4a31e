package testioc

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/ecodeclub/tastebook/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"gopkg.in/yaml.v3"
)

var (
	db         *egorm.Component
	dbInitOnce sync.Once
	loadOnce   sync.Once
	loadErr    error
)

func InitDB() *egorm.Component {
	dbInitOnce.Do(func() {
		if err := loadConfig(); err != nil {
			panic(err)
		}
		ioc.WaitForDBSetup(econf.GetString("mysql.dsn"))
		db = egorm.Load("mysql").Build()
	})
	return db
}

// loadConfig 从当前目录往上找 config/local.yaml
func loadConfig() error {
	loadOnce.Do(func() {
		path, err := findLocalConfig()
		if err != nil {
			loadErr = err
			return
		}
		content, err := os.ReadFile(path)
		if err != nil {
			loadErr = err
			return
		}
		loadErr = econf.LoadFromReader(bytes.NewReader(content), yaml.Unmarshal)
	})
	return loadErr
}

func findLocalConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		path := filepath.Join(dir, "config", "local.yaml")
		if _, err = os.Stat(path); err == nil {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("没有找到 config/local.yaml")
		}
		dir = parent
	}
}

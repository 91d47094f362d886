package service

import (
	"strconv"
	"strings"
	"time"

	"lead-ui/database"
	"lead-ui/database/model"
	"lead-ui/util/common"
	"lead-ui/util/random"
	"lead-ui/web/entity"
)

var defaultValueMap = map[string]string{
	"webListen":     "",
	"webDomain":     "",
	"webPort":       "2053",
	"webCertFile":   "",
	"webKeyFile":    "",
	"secret":        random.Seq(32),
	"webBasePath":   "/",
	"sessionMaxAge": "60",
	"timeLocation":  "UTC",
}

// SettingService reads and writes runtime settings stored in the settings
// table, falling back to defaultValueMap for unset keys.
type SettingService struct{}

func (s *SettingService) GetAllSetting() (*entity.AllSetting, error) {
	allSetting := &entity.AllSetting{}
	var err error

	if allSetting.WebListen, err = s.GetListen(); err != nil {
		return nil, err
	}
	if allSetting.WebDomain, err = s.GetWebDomain(); err != nil {
		return nil, err
	}
	if allSetting.WebPort, err = s.GetPort(); err != nil {
		return nil, err
	}
	if allSetting.WebCertFile, err = s.GetCertFile(); err != nil {
		return nil, err
	}
	if allSetting.WebKeyFile, err = s.GetKeyFile(); err != nil {
		return nil, err
	}
	if allSetting.WebBasePath, err = s.GetBasePath(); err != nil {
		return nil, err
	}
	if allSetting.SessionMaxAge, err = s.GetSessionMaxAge(); err != nil {
		return nil, err
	}
	if allSetting.TimeLocation, err = s.getString("timeLocation"); err != nil {
		return nil, err
	}

	return allSetting, nil
}

func (s *SettingService) ResetSettings() error {
	db := database.GetDB()
	return db.Where("1 = 1").Delete(model.Setting{}).Error
}

func (s *SettingService) getSetting(key string) (*model.Setting, error) {
	db := database.GetDB()
	setting := &model.Setting{}
	err := db.Model(model.Setting{}).Where("key = ?", key).First(setting).Error
	if err != nil {
		return nil, err
	}
	return setting, nil
}

func (s *SettingService) saveSetting(key string, value string) error {
	setting, err := s.getSetting(key)
	db := database.GetDB()
	if database.IsNotFound(err) {
		return db.Create(&model.Setting{
			Key:   key,
			Value: value,
		}).Error
	} else if err != nil {
		return err
	}
	setting.Key = key
	setting.Value = value
	return db.Save(setting).Error
}

func (s *SettingService) getString(key string) (string, error) {
	setting, err := s.getSetting(key)
	if database.IsNotFound(err) {
		value, ok := defaultValueMap[key]
		if !ok {
			return "", common.NewErrorf("key <%v> not in defaultValueMap", key)
		}
		return value, nil
	} else if err != nil {
		return "", err
	}
	return setting.Value, nil
}

func (s *SettingService) setString(key string, value string) error {
	return s.saveSetting(key, value)
}

func (s *SettingService) getInt(key string) (int, error) {
	str, err := s.getString(key)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(str)
}

func (s *SettingService) setInt(key string, value int) error {
	return s.setString(key, strconv.Itoa(value))
}

func (s *SettingService) GetListen() (string, error) {
	return s.getString("webListen")
}

func (s *SettingService) SetListen(ip string) error {
	return s.setString("webListen", ip)
}

func (s *SettingService) GetWebDomain() (string, error) {
	return s.getString("webDomain")
}

func (s *SettingService) GetPort() (int, error) {
	return s.getInt("webPort")
}

func (s *SettingService) SetPort(port int) error {
	return s.setInt("webPort", port)
}

func (s *SettingService) GetCertFile() (string, error) {
	return s.getString("webCertFile")
}

func (s *SettingService) GetKeyFile() (string, error) {
	return s.getString("webKeyFile")
}

// GetSecret returns the cookie-signing secret, persisting the generated
// default on first read so sessions survive restarts.
func (s *SettingService) GetSecret() ([]byte, error) {
	setting, err := s.getSetting("secret")
	if database.IsNotFound(err) {
		secret := defaultValueMap["secret"]
		if err := s.saveSetting("secret", secret); err != nil {
			return nil, err
		}
		return []byte(secret), nil
	} else if err != nil {
		return nil, err
	}
	return []byte(setting.Value), nil
}

func (s *SettingService) GetBasePath() (string, error) {
	basePath, err := s.getString("webBasePath")
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	return basePath, nil
}

func (s *SettingService) GetSessionMaxAge() (int, error) {
	return s.getInt("sessionMaxAge")
}

func (s *SettingService) GetTimeLocation() (*time.Location, error) {
	l, err := s.getString("timeLocation")
	if err != nil {
		return nil, err
	}
	location, err := time.LoadLocation(l)
	if err != nil {
		defaultLocation := defaultValueMap["timeLocation"]
		location, _ = time.LoadLocation(defaultLocation)
	}
	return location, nil
}

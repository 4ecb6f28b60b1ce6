package mysql

import (
	"bloghive/models"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
)

func SelectUserByUserID(userID int64) (usr *models.User, err error) {
	res := db.First(&usr, "user_id = ?", userID)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "query failed")
	}
	return usr, nil
}

func SelectUserByName(name string) (usr *models.User, err error) {
	res := db.First(&usr, "user_name = ?", name)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "query failed")
	}
	return usr, nil
}

func SelectUserByEmail(email string) (usr *models.User, err error) {
	res := db.First(&usr, "email = ?", email)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "query failed")
	}
	return usr, nil
}

func InsertUser(usr *models.User) error {
	res := db.Create(&usr)
	if res.Error != nil {
		return errors.Wrap(res.Error, "insert failed")
	}
	return nil
}

// IsDuplicateEntry reports whether err is a MySQL unique-key violation.
func IsDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(errors.Cause(err), &mysqlErr) && mysqlErr.Number == 1062
}

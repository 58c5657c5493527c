package emoji

import (
	"testing"

	"unipick/feature/emoji/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func testCatalog() *models.Catalog {
	c := &models.Catalog{}
	c.EnsureGroup("Smileys & Emotion")
	c.ResetSubgroup("Smileys & Emotion", "face-smiling")
	c.Append("Smileys & Emotion", "face-smiling", models.Entry{
		Codepoints: []string{"1F600"},
		Status:     "fully-qualified",
		Emoji:      "😀",
		Name:       "grinning face",
	})
	c.Append("Smileys & Emotion", "face-smiling", models.Entry{
		Codepoints: []string{"1F636", "200D", "1F32B", "FE0F"},
		Status:     "fully-qualified",
		Emoji:      "😶‍🌫️",
		Name:       "face in clouds",
	})
	return c
}

func TestCatalogRows(t *testing.T) {
	rows := testCatalog().Rows()
	require.Len(t, rows, 2)

	assert.Equal(t, "Smileys & Emotion", rows[0].GroupName)
	assert.Equal(t, "face-smiling", rows[0].SubgroupName)
	assert.Equal(t, "1F600", rows[0].Codepoints)
	assert.Equal(t, "😀", rows[0].Emoji)

	// Code point sequences join on a single space.
	assert.Equal(t, "1F636 200D 1F32B FE0F", rows[1].Codepoints)
}

func TestReplace_ClearsBeforeInsert(t *testing.T) {
	db, mock := setupMockDB(t)

	// GORM wraps each write call in its own implicit transaction.
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `emojis`").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `emojis`").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := Replace(db, testCatalog())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplace_EmptyCatalogOnlyClears(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `emojis`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := Replace(db, &models.Catalog{})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_AllRows(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"group_name", "subgroup_name", "emoji", "name"})
	rows.AddRow("Smileys & Emotion", "face-smiling", "😀", "grinning face")
	rows.AddRow("Smileys & Emotion", "face-smiling", "😃", "grinning face with big eyes")

	mock.ExpectQuery("SELECT `group_name`,`subgroup_name`,`emoji`,`name` FROM `emojis`").WillReturnRows(rows)

	listings, err := List(db, "", "")
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "😀", listings[0].Emoji)
	assert.Equal(t, "grinning face with big eyes", listings[1].Name)
}

func TestList_FilteredByGroupAndSubgroup(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"group_name", "subgroup_name", "emoji", "name"})
	rows.AddRow("Flags", "flag", "🏁", "chequered flag")

	mock.ExpectQuery("SELECT `group_name`,`subgroup_name`,`emoji`,`name` FROM `emojis` WHERE group_name = \\? AND subgroup_name = \\?").
		WithArgs("Flags", "flag").
		WillReturnRows(rows)

	listings, err := List(db, "Flags", "flag")
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "🏁", listings[0].Emoji)
}

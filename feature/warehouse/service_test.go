package warehouse

import (
	"context"
	"io"
	"regexp"
	"strings"
	"testing"

	"championship-pipeline/core/config"
	"championship-pipeline/core/storage/mocks"
	"championship-pipeline/core/table"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
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

func TestLoadTable(t *testing.T) {
	db, dbMock := setupMockDB(t)
	s := NewService(config.Pipeline{}, nil, "bkt", db, zap.NewNop())

	tab := table.New("club_id", "club", "pts")
	require.NoError(t, tab.AppendRow("8", "Leeds United", "100"))
	require.NoError(t, tab.AppendRow("3", "Burnley", "100"))

	dbMock.ExpectBegin()
	dbMock.ExpectExec(regexp.QuoteMeta("DROP TABLE IF EXISTS `league_table_enhanced_2024_25`")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	dbMock.ExpectExec(regexp.QuoteMeta(
		"CREATE TABLE `league_table_enhanced_2024_25` (`club_id` DOUBLE, `club` VARCHAR(512), `pts` DOUBLE)")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	dbMock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO `league_table_enhanced_2024_25` (`club_id`, `club`, `pts`) VALUES (?, ?, ?), (?, ?, ?)")).
		WithArgs(float64(8), "Leeds United", float64(100), float64(3), "Burnley", float64(100)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	dbMock.ExpectCommit()

	require.NoError(t, s.LoadTable(context.Background(), "league_table_enhanced_2024_25", tab))
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestLoadTable_RollsBackOnFailure(t *testing.T) {
	db, dbMock := setupMockDB(t)
	s := NewService(config.Pipeline{}, nil, "bkt", db, zap.NewNop())

	tab := table.New("club")
	require.NoError(t, tab.AppendRow("Leeds United"))

	dbMock.ExpectBegin()
	dbMock.ExpectExec("DROP TABLE").WillReturnResult(sqlmock.NewResult(0, 0))
	dbMock.ExpectExec("CREATE TABLE").WillReturnError(assert.AnError)
	dbMock.ExpectRollback()

	require.Error(t, s.LoadTable(context.Background(), "t", tab))
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestLoad_NoCuratedObjects(t *testing.T) {
	db, _ := setupMockDB(t)

	client := new(mocks.Client)
	ch := make(chan minio.ObjectInfo)
	close(ch)
	client.On("ListObjects", mock.Anything, "bkt", mock.Anything).
		Return((<-chan minio.ObjectInfo)(ch))

	s := NewService(config.Pipeline{}, client, "bkt", db, zap.NewNop())
	require.NoError(t, s.Load(context.Background()), "an empty curated prefix is not an error")
}

func TestLoad_EndToEnd(t *testing.T) {
	db, dbMock := setupMockDB(t)

	client := new(mocks.Client)
	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Key: "curated/player_stats_semantic_2024_25.csv"}
	close(ch)
	client.On("ListObjects", mock.Anything, "bkt", mock.Anything).
		Return((<-chan minio.ObjectInfo)(ch))
	client.On("GetObject", mock.Anything, "bkt", "curated/player_stats_semantic_2024_25.csv", mock.Anything).
		Return(io.NopCloser(strings.NewReader("club_id,player\n8,Joel Piroe\n")), nil)

	dbMock.ExpectBegin()
	dbMock.ExpectExec(regexp.QuoteMeta("DROP TABLE IF EXISTS `player_stats_semantic_2024_25`")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	dbMock.ExpectExec(regexp.QuoteMeta(
		"CREATE TABLE `player_stats_semantic_2024_25` (`club_id` DOUBLE, `player` VARCHAR(512))")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	dbMock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO `player_stats_semantic_2024_25` (`club_id`, `player`) VALUES (?, ?)")).
		WithArgs(float64(8), "Joel Piroe").
		WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectCommit()

	s := NewService(config.Pipeline{}, client, "bkt", db, zap.NewNop())
	require.NoError(t, s.Load(context.Background()))
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

package services

import (
	"github.com/speccs/assetdb/internal/models"
	"gorm.io/gorm"
)

// Cascade deletes walk the ownership hierarchy explicitly inside one
// transaction instead of relying on engine FK enforcement, so the
// contract holds identically across every supported driver. The DDL
// declares ON DELETE CASCADE as well; the walk is the portable path.

// DeleteProperty removes a property and every descendant row it
// transitively owns. Returns the total number of rows removed.
func DeleteProperty(db *gorm.DB, id string) (int64, error) {
	var affected int64
	err := db.Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.Property{}, id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound
		}

		var buildingIDs []string
		if err := silent(tx).Model(&models.Building{}).
			Where("property_id = ?", id).Pluck("id", &buildingIDs).Error; err != nil {
			return err
		}

		n, err := deleteBuildingsTx(tx, buildingIDs)
		if err != nil {
			return err
		}
		affected += n

		result := tx.Where("id = ?", id).Delete(&models.Property{})
		if result.Error != nil {
			return result.Error
		}
		affected += result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// DeleteBuilding removes a building and every descendant row it owns.
func DeleteBuilding(db *gorm.DB, id string) (int64, error) {
	var affected int64
	err := db.Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.Building{}, id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound
		}
		affected, err = deleteBuildingsTx(tx, []string{id})
		return err
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// DeleteFloor removes a floor and every descendant row it owns.
func DeleteFloor(db *gorm.DB, id string) (int64, error) {
	var affected int64
	err := db.Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.Floor{}, id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound
		}
		affected, err = deleteFloorsTx(tx, []string{id})
		return err
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// DeleteRoom removes a room and the assets it contains.
func DeleteRoom(db *gorm.DB, id string) (int64, error) {
	var affected int64
	err := db.Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.Room{}, id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound
		}
		affected, err = deleteRoomsTx(tx, []string{id})
		return err
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func deleteBuildingsTx(tx *gorm.DB, buildingIDs []string) (int64, error) {
	if len(buildingIDs) == 0 {
		return 0, nil
	}

	var floorIDs []string
	if err := silent(tx).Model(&models.Floor{}).
		Where("building_id IN ?", buildingIDs).Pluck("id", &floorIDs).Error; err != nil {
		return 0, err
	}

	affected, err := deleteFloorsTx(tx, floorIDs)
	if err != nil {
		return 0, err
	}

	result := tx.Where("id IN ?", buildingIDs).Delete(&models.Building{})
	if result.Error != nil {
		return 0, result.Error
	}
	return affected + result.RowsAffected, nil
}

func deleteFloorsTx(tx *gorm.DB, floorIDs []string) (int64, error) {
	if len(floorIDs) == 0 {
		return 0, nil
	}

	var roomIDs []string
	if err := silent(tx).Model(&models.Room{}).
		Where("floor_id IN ?", floorIDs).Pluck("id", &roomIDs).Error; err != nil {
		return 0, err
	}

	affected, err := deleteRoomsTx(tx, roomIDs)
	if err != nil {
		return 0, err
	}

	result := tx.Where("id IN ?", floorIDs).Delete(&models.Floor{})
	if result.Error != nil {
		return 0, result.Error
	}
	return affected + result.RowsAffected, nil
}

func deleteRoomsTx(tx *gorm.DB, roomIDs []string) (int64, error) {
	if len(roomIDs) == 0 {
		return 0, nil
	}

	var assetIDs []string
	if err := silent(tx).Model(&models.Asset{}).
		Where("room_id IN ?", roomIDs).Pluck("id", &assetIDs).Error; err != nil {
		return 0, err
	}

	affected, err := deleteAssetsTx(tx, assetIDs)
	if err != nil {
		return 0, err
	}

	result := tx.Where("id IN ?", roomIDs).Delete(&models.Room{})
	if result.Error != nil {
		return 0, result.Error
	}
	return affected + result.RowsAffected, nil
}

// deleteAssetsTx removes assets plus every connection and journal row that
// references them, and clears reference-door links pointing at them from
// any room (null-out policy).
func deleteAssetsTx(tx *gorm.DB, assetIDs []string) (int64, error) {
	if len(assetIDs) == 0 {
		return 0, nil
	}

	var affected int64

	result := tx.Where("asset_id IN ?", assetIDs).Delete(&models.Journal{})
	if result.Error != nil {
		return 0, result.Error
	}
	affected += result.RowsAffected

	result = tx.Where("from_asset_id IN ? OR to_asset_id IN ?", assetIDs, assetIDs).
		Delete(&models.Connection{})
	if result.Error != nil {
		return 0, result.Error
	}
	affected += result.RowsAffected

	if err := tx.Model(&models.Room{}).
		Where("reference_door_asset_id IN ?", assetIDs).
		Update("reference_door_asset_id", nil).Error; err != nil {
		return 0, err
	}

	result = tx.Where("id IN ?", assetIDs).Delete(&models.Asset{})
	if result.Error != nil {
		return 0, result.Error
	}
	affected += result.RowsAffected

	return affected, nil
}

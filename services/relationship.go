package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gangasingh/uniconnect-backend/models"
)

// RelationshipService owns the consistency rules linking Class, User,
// Subject and Resource: lazy class creation, class membership moves and the
// cascade deletes. Everything else in the API is a plain lookup or mutation.
type RelationshipService struct {
	db    *gorm.DB
	files FileStore
}

func NewRelationshipService(db *gorm.DB, files FileStore) *RelationshipService {
	return &RelationshipService{db: db, files: files}
}

// FindOrCreateClass returns the class for the (courseName, section, semester)
// triple, creating it if it does not exist yet. When userID is given the
// user's class link is pointed at the class (a no-op if already a member).
//
// Two concurrent first-calls for the same triple can both miss the SELECT;
// the composite unique index rejects the second INSERT and we re-read the
// winner instead of locking anything.
func (s *RelationshipService) FindOrCreateClass(ctx context.Context, courseName, section, semester string, userID *uuid.UUID) (uuid.UUID, error) {
	db := s.db.WithContext(ctx)

	var class models.Class
	err := db.Where("course_name = ? AND section = ? AND semester = ?", courseName, section, semester).
		First(&class).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		class = models.Class{CourseName: courseName, Section: section, Semester: semester}
		if createErr := db.Create(&class).Error; createErr != nil {
			// Lost the race (or the insert failed outright): re-read by
			// the triple and merge onto the winner. The re-read needs a
			// fresh destination: class already carries the loser's id,
			// and gorm folds a non-zero primary key into the WHERE.
			var winner models.Class
			if findErr := db.Where("course_name = ? AND section = ? AND semester = ?", courseName, section, semester).
				First(&winner).Error; findErr != nil {
				if errors.Is(createErr, gorm.ErrDuplicatedKey) {
					return uuid.Nil, fmt.Errorf("class %s/%s/%s: %w", courseName, section, semester, ErrConflict)
				}
				return uuid.Nil, createErr
			}
			class = winner
		}
	} else if err != nil {
		return uuid.Nil, err
	}

	if userID != nil {
		if err := db.Model(&models.User{}).Where("id = ?", *userID).
			Update("class_id", class.ID).Error; err != nil {
			return uuid.Nil, err
		}
	}

	return class.ID, nil
}

// ReassignClassMembership moves a user to the class for the new triple when
// their academic placement changes. Membership lives on the user row as a
// single class_id column, so repointing it removes the old membership and
// adds the new one in one write; there is no intermediate state where the
// user is in two classes or in none.
func (s *RelationshipService) ReassignClassMembership(ctx context.Context, userID uuid.UUID, oldClassID *uuid.UUID, courseName, section, semester string) (uuid.UUID, error) {
	newClassID, err := s.FindOrCreateClass(ctx, courseName, section, semester, nil)
	if err != nil {
		return uuid.Nil, err
	}
	if oldClassID != nil && *oldClassID == newClassID {
		// Same triple as before; make sure the link exists and stop.
		return newClassID, s.db.WithContext(ctx).Model(&models.User{}).
			Where("id = ?", userID).Update("class_id", newClassID).Error
	}
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).Update("class_id", newClassID).Error; err != nil {
		return uuid.Nil, err
	}
	return newClassID, nil
}

// VerifySubjectBelongsToClass checks the subject exists and is parented by
// the class. A missing class or subject is ErrNotFound; an existing subject
// under a different class is ErrRelationshipMismatch (the caller passed a
// wrong parameter, not a missing resource).
func (s *RelationshipService) VerifySubjectBelongsToClass(ctx context.Context, classID, subjectID uuid.UUID) (*models.Subject, error) {
	db := s.db.WithContext(ctx)

	var class models.Class
	if err := db.First(&class, "id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("class %s", classID)
		}
		return nil, err
	}

	var subject models.Subject
	if err := db.First(&subject, "id = ?", subjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("subject %s", subjectID)
		}
		return nil, err
	}

	if subject.ClassID != classID {
		return nil, mismatchf("subject %s does not belong to class %s", subjectID, classID)
	}
	return &subject, nil
}

// VerifyResourceBelongsToSubject is the same predicate one level down.
func (s *RelationshipService) VerifyResourceBelongsToSubject(ctx context.Context, subjectID, resourceID uuid.UUID) (*models.Resource, error) {
	db := s.db.WithContext(ctx)

	var subject models.Subject
	if err := db.First(&subject, "id = ?", subjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("subject %s", subjectID)
		}
		return nil, err
	}

	var resource models.Resource
	if err := db.First(&resource, "id = ?", resourceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("resource %s", resourceID)
		}
		return nil, err
	}

	if resource.SubjectID != subjectID {
		return nil, mismatchf("resource %s does not belong to subject %s", resourceID, subjectID)
	}
	return &resource, nil
}

// DeleteSubjectCascade removes a subject and every resource under it.
// Children go first: if the process dies mid-sequence the worst leftover is
// an orphaned resource row, never a subject the class still points at.
func (s *RelationshipService) DeleteSubjectCascade(ctx context.Context, classID, subjectID uuid.UUID) error {
	if _, err := s.VerifySubjectBelongsToClass(ctx, classID, subjectID); err != nil {
		return err
	}

	db := s.db.WithContext(ctx)

	// Release stored files for uploaded documents before dropping the rows.
	var docs []models.Resource
	if err := db.Where("subject_id = ? AND type = ? AND storage_path <> ''", subjectID, models.ResourceDocument).
		Find(&docs).Error; err != nil {
		return err
	}
	for _, doc := range docs {
		if err := s.files.Delete(doc.Link); err != nil {
			log.Printf("could not delete stored file for resource %s: %v", doc.ID, err)
		}
	}

	if err := db.Where("subject_id = ?", subjectID).Delete(&models.Resource{}).Error; err != nil {
		return err
	}
	return db.Delete(&models.Subject{}, "id = ?", subjectID).Error
}

// DeleteResourceCascade removes one resource, releasing its stored file
// first when it is an uploaded document. Deleting an id that does not
// resolve reports ErrNotFound and mutates nothing, so a second delete of the
// same id is a clean NotFound rather than an error loop.
func (s *RelationshipService) DeleteResourceCascade(ctx context.Context, resourceID uuid.UUID) error {
	db := s.db.WithContext(ctx)

	var resource models.Resource
	if err := db.First(&resource, "id = ?", resourceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundf("resource %s", resourceID)
		}
		return err
	}

	if resource.Type == models.ResourceDocument && resource.StoragePath != "" {
		if err := s.files.Delete(resource.Link); err != nil {
			log.Printf("could not delete stored file for resource %s: %v", resource.ID, err)
		}
	}

	return db.Delete(&models.Resource{}, "id = ?", resourceID).Error
}
